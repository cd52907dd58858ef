// Package content defines the post record shared by the store, the
// ingestion sources and the curation rules.
package content

import (
	"strings"
	"time"
)

// DateLayout is the storage and display layout of Post.Date. Dates in this
// layout sort lexically in chronological order.
const DateLayout = "2006-01-02"

// Post is a published piece of editorial content.
type Post struct {
	Slug      string   `json:"slug"`
	Date      string   `json:"date"`
	Title     string   `json:"title"`
	Summary   string   `json:"summary"`
	Tags      []string `json:"tags"`
	Images    []string `json:"images"`
	Link      string   `json:"link"`
	Content   string   `json:"-"`
	Published bool     `json:"-"`
}

// PrimaryImage returns Images[0], or "" when the post has no images.
func (p Post) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// PostLink is the canonical relative link for a slug.
func PostLink(slug string) string {
	return "/blog/" + slug + "/"
}

// Slugify converts a title to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC1123Z,
	time.RFC1123,
}

// NormalizeDate parses s in any of the accepted layouts and returns it in
// DateLayout.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	var firstErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.Format(DateLayout), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return "", firstErr
}
