package curation

import "github.com/eringen/frontpage/content"

// DefaultColumnSize is the number of posts a front-page column lists.
const DefaultColumnSize = 5

// Column is the content of one labeled front-page column.
type Column struct {
	Label Label          `json:"label"`
	Posts []content.Post `json:"posts"`
	// HasMore is set when more posts matched than the column holds.
	HasMore bool `json:"hasMore"`
}

// SelectColumn keeps the posts whose Classify result contains label and cuts
// the list at size.
func SelectColumn(posts []content.Post, label Label, size int) Column {
	col := Column{Label: label, Posts: make([]content.Post, 0, max(0, min(size, len(posts))))}
	for _, p := range posts {
		if !Classify(p).Has(label) {
			continue
		}
		if len(col.Posts) >= size {
			col.HasMore = true
			break
		}
		col.Posts = append(col.Posts, p)
	}
	return col
}
