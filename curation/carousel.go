package curation

import "github.com/eringen/frontpage/content"

// DefaultCarouselLimit is the number of slides the front page shows.
const DefaultCarouselLimit = 5

// CarouselItem is a single showcase slide.
type CarouselItem struct {
	Title string `json:"title"`
	Image string `json:"image"`
	Slug  string `json:"slug"`
}

// SelectCarousel takes the first limit posts that have at least one image.
func SelectCarousel(posts []content.Post, limit int) []CarouselItem {
	items := make([]CarouselItem, 0, max(0, min(limit, len(posts))))
	for _, p := range posts {
		if len(items) >= limit {
			break
		}
		if len(p.Images) == 0 {
			continue
		}
		items = append(items, CarouselItem{
			Title: p.Title,
			Image: p.Images[0],
			Slug:  p.Slug,
		})
	}
	return items
}
