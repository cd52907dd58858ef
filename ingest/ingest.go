// Package ingest turns external content sources into date-descending post
// lists: a directory of markdown files with YAML front matter, or an
// RSS/Atom feed.
package ingest

import (
	"sort"

	"github.com/eringen/frontpage/content"
)

// SortPosts orders posts newest first. Posts sharing a date keep slug order
// so repeated imports are stable.
func SortPosts(posts []content.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].Date != posts[j].Date {
			return posts[i].Date > posts[j].Date
		}
		return posts[i].Slug < posts[j].Slug
	})
}

func cleanList(vals []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
