package curation

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/eringen/frontpage/content"
)

type selection struct {
	Carousel []CarouselItem
	Columns  []Column
	Related  [][]string
	Labels   [][]Label
}

func selectAll(posts []content.Post) selection {
	var s selection
	s.Carousel = SelectCarousel(posts, DefaultCarouselLimit)
	for _, l := range AllLabels() {
		s.Columns = append(s.Columns, SelectColumn(posts, l, DefaultColumnSize))
	}
	for _, p := range posts {
		s.Related = append(s.Related, slugs(SelectRelated(p, posts)))
		s.Labels = append(s.Labels, Classify(p).Labels())
	}
	return s
}

func TestSelectorsShareSnapshotConcurrently(t *testing.T) {
	tagSets := [][]string{{"Hollywood"}, {"Canada Travel"}, {"Gossip"}, {"Exclusive Images"}, {"Actor", "Buzz"}, nil, {"Recipes"}}
	var posts []content.Post
	for i := 0; i < 40; i++ {
		p := post(fmt.Sprintf("p%02d", i), tagSets[i%len(tagSets)]...)
		if i%3 == 0 {
			p = withImages(p, fmt.Sprintf("/img/%d.jpg", i))
		}
		posts = append(posts, p)
	}
	want := selectAll(posts)

	const workers = 16
	results := make([]selection, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			results[w] = selectAll(posts)
		}(w)
	}
	wg.Wait()

	for w, got := range results {
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("worker %d diverged (-want +got):\n%s", w, diff)
		}
	}
}
