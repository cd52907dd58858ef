package frontpage

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/frontpage/curation"
)

func testConfig() SiteConfig {
	cfg := SiteConfig{AdminPassword: "pw", SessionSecret: "secret"}
	cfg.setDefaults()
	return cfg
}

func TestBuildFrontPage(t *testing.T) {
	var posts []Post
	for i := 0; i < 8; i++ {
		p := Post{Slug: fmt.Sprintf("p%d", i), Title: fmt.Sprintf("Post %d", i), Tags: []string{"hollywood"}}
		if i%2 == 0 {
			p.Images = []string{fmt.Sprintf("/img/%d.jpg", i)}
		}
		posts = append(posts, p)
	}
	posts = append(posts, Post{Slug: "trip", Tags: []string{"Travel"}})

	page := BuildFrontPage(posts, testConfig())

	require.Len(t, page.Carousel, 4)
	assert.Equal(t, "p0", page.Carousel[0].Slug)
	assert.Equal(t, "/img/6.jpg", page.Carousel[3].Image)

	require.Len(t, page.Columns, 3)
	hw := page.Columns[0]
	assert.Equal(t, curation.Hollywood, hw.Label)
	assert.Equal(t, "#DC2626", hw.Color)
	assert.Len(t, hw.Posts, 5)
	assert.True(t, hw.HasMore)
	assert.Equal(t, "/section/hollywood/", hw.MoreURL)

	world := page.Columns[1]
	assert.Equal(t, []string{"trip"}, []string{world.Posts[0].Slug})
	assert.False(t, world.HasMore)
	assert.Empty(t, world.MoreURL)

	assert.Empty(t, page.Columns[2].Posts)

	require.Len(t, page.Latest, 5)
	assert.Equal(t, "p0", page.Latest[0].Slug)
}

func TestBuildFrontPageEmpty(t *testing.T) {
	page := BuildFrontPage(nil, testConfig())
	assert.Empty(t, page.Carousel)
	assert.Empty(t, page.Latest)
	assert.Len(t, page.Columns, 3)
}

func TestSectionFor(t *testing.T) {
	assert.Equal(t, "/celebverse/", SectionFor(curation.Celebverse).Path)
	assert.Equal(t, "/gossips/", SectionFor(curation.Gossips).Path)
	assert.Equal(t, "/section/blog/", SectionFor(curation.Blog).Path)
}

func TestNavigateShowcase(t *testing.T) {
	tests := []struct {
		n, slide int
		want     ShowcaseNav
	}{
		{4, 0, ShowcaseNav{Index: 0, Prev: 3, Next: 1}},
		{4, 3, ShowcaseNav{Index: 3, Prev: 2, Next: 0}},
		{4, 9, ShowcaseNav{Index: 1, Prev: 0, Next: 2}},
		{4, -1, ShowcaseNav{Index: 3, Prev: 2, Next: 0}},
		{1, 5, ShowcaseNav{}},
		{0, 2, ShowcaseNav{}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NavigateShowcase(tt.n, tt.slide), "n=%d slide=%d", tt.n, tt.slide)
	}
}

func TestFrontPageWithSlide(t *testing.T) {
	posts := []Post{
		{Slug: "a", Images: []string{"/a.jpg"}},
		{Slug: "b", Images: []string{"/b.jpg"}},
		{Slug: "c", Images: []string{"/c.jpg"}},
	}
	page := BuildFrontPage(posts, testConfig())
	assert.Equal(t, ShowcaseNav{Index: 0, Prev: 2, Next: 1}, page.Showcase)
	assert.Equal(t, ShowcaseNav{Index: 2, Prev: 1, Next: 0}, page.WithSlide(2).Showcase)
}
