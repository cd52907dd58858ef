package curation

import "github.com/eringen/frontpage/content"

// priorityChain is evaluated in order; the first label whose keywords match
// decides the post's primary category. Posts matching none fall into Blog.
// A Hollywood post is therefore always Celebverse here, even when it also
// carries gossip tags.
var priorityChain = []Label{Celebverse, Gossips}

// PrimaryCategory assigns exactly one category to a post.
func PrimaryCategory(p content.Post) Label {
	for _, l := range priorityChain {
		if matchesLabel(p.Tags, l) {
			return l
		}
	}
	return Blog
}

// InCategory reports whether p belongs to category under the exclusive
// scheme: keyword match for chain labels, and no chain match at all for Blog.
func InCategory(p content.Post, category Label) bool {
	if category != Blog {
		return matchesLabel(p.Tags, category)
	}
	for _, l := range priorityChain {
		if matchesLabel(p.Tags, l) {
			return false
		}
	}
	return true
}

// Filter keeps the posts in category, preserving order. It backs the
// section pages.
func Filter(posts []content.Post, category Label) []content.Post {
	out := make([]content.Post, 0)
	for _, p := range posts {
		if InCategory(p, category) {
			out = append(out, p)
		}
	}
	return out
}
