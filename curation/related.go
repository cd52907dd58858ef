package curation

import "github.com/eringen/frontpage/content"

const (
	// MaxRelated caps the same-category related list.
	MaxRelated = 6
	// FallbackRelated is the size of the unfiltered list used when no post
	// shares the current post's category.
	FallbackRelated = 3
)

// SelectRelated picks companion posts for current. Posts in current's
// primary category come first-come in input order, up to MaxRelated. When
// none qualify, the first FallbackRelated other posts are returned instead,
// so the result is empty only when current is the sole post.
func SelectRelated(current content.Post, posts []content.Post) []content.Post {
	category := PrimaryCategory(current)

	pool := make([]content.Post, 0, len(posts))
	for _, p := range posts {
		if p.Slug != current.Slug {
			pool = append(pool, p)
		}
	}

	related := make([]content.Post, 0, min(MaxRelated, len(pool)))
	for _, p := range pool {
		if len(related) == MaxRelated {
			break
		}
		if InCategory(p, category) {
			related = append(related, p)
		}
	}
	if len(related) > 0 {
		return related
	}
	return pool[:min(FallbackRelated, len(pool))]
}
