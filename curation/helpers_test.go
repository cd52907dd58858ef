package curation

import "github.com/eringen/frontpage/content"

func post(slug string, tags ...string) content.Post {
	return content.Post{Slug: slug, Title: "Title " + slug, Tags: tags}
}

func withImages(p content.Post, images ...string) content.Post {
	p.Images = images
	return p
}

func slugs(posts []content.Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Slug)
	}
	return out
}
