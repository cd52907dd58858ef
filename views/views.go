// Package views is the stock HTML theme for frontpage. Sites that want their
// own markup supply their own frontpage.ViewFuncs instead.
package views

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/frontpage"
	"github.com/eringen/frontpage/curation"
	"github.com/eringen/frontpage/markdown"
)

// New returns the stock view set for cfg.
func New(cfg frontpage.SiteConfig) frontpage.ViewFuncs {
	website := frontpage.WebsiteJsonLD(cfg)
	admin := frontpage.PageMeta{Title: "Admin - " + cfg.Name}
	return frontpage.ViewFuncs{
		Home: func(fp frontpage.FrontPage, meta frontpage.PageMeta) templ.Component {
			return layout(cfg, meta, website, front(fp, "", "Latest", meta.Description))
		},
		Section: func(s frontpage.Section, fp frontpage.FrontPage, meta frontpage.PageMeta) templ.Component {
			return layout(cfg, meta, website, front(fp, s.Label, string(s.Label), meta.Description))
		},
		TagIndex: func(tags []string, meta frontpage.PageMeta) templ.Component {
			return layout(cfg, meta, "", tagIndex(tags))
		},
		TagList: func(tag string, posts []frontpage.Post, meta frontpage.PageMeta) templ.Component {
			return layout(cfg, meta, "", tagList(tag, posts))
		},
		Post: func(p frontpage.Post, related []frontpage.Post, meta frontpage.PageMeta) templ.Component {
			return layout(cfg, meta, frontpage.NewsArticleJsonLD(p, cfg), article(p, related))
		},
		AdminLogin: func(showError bool, csrf string) templ.Component {
			return layout(cfg, admin, "", login(showError, csrf))
		},
		AdminDashboard: func(rows []frontpage.AdminRow, msg string, csrf string) templ.Component {
			return layout(cfg, admin, "", dashboard(rows, msg, csrf))
		},
		AdminForm: func(p frontpage.Post, csrf string) templ.Component {
			return layout(cfg, admin, "", component(func(o *out) {
				o.raw(`<p><a href="/admin/">&larr; Dashboard</a></p>`)
				editor(o, p, csrf)
			}))
		},
		AdminImages: func(images []frontpage.Image, csrf string) templ.Component {
			return layout(cfg, admin, "", imageList(images, csrf))
		},
		NotFound: func() templ.Component {
			return layout(cfg, frontpage.PageMeta{Title: "Not found"}, "", component(func(o *out) {
				o.raw(`<h1>Page not found</h1><p><a href="/">Back to the front page</a></p>`)
			}))
		},
		ServerError: func() templ.Component {
			return layout(cfg, frontpage.PageMeta{Title: "Server error"}, "", component(func(o *out) {
				o.raw(`<h1>Something went wrong</h1><p>Please try again later.</p>`)
			}))
		},
	}
}

// out writes markup, holding the first write error so render code can run
// straight through and check once.
type out struct {
	ctx context.Context
	w   io.Writer
	err error
}

func component(fn func(o *out)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		o := &out{ctx: ctx, w: w}
		fn(o)
		return o.err
	})
}

func (o *out) raw(parts ...string) {
	for _, s := range parts {
		if o.err != nil {
			return
		}
		_, o.err = io.WriteString(o.w, s)
	}
}

func (o *out) text(s string) {
	o.raw(templ.EscapeString(s))
}

func (o *out) attr(name, val string) {
	o.raw(" ", name, `="`, templ.EscapeString(val), `"`)
}

// url writes a link attribute; unsafe schemes are replaced by templ.
func (o *out) url(name, u string) {
	o.attr(name, string(templ.URL(u)))
}

func (o *out) render(c templ.Component) {
	if o.err == nil {
		o.err = c.Render(o.ctx, o.w)
	}
}

func layout(cfg frontpage.SiteConfig, meta frontpage.PageMeta, jsonLD string, body templ.Component) templ.Component {
	return component(func(o *out) {
		o.raw("<!doctype html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n",
			`<meta name="viewport" content="width=device-width, initial-scale=1">`, "\n<title>")
		o.text(meta.Title)
		o.raw("</title>\n")
		if meta.Description != "" {
			o.raw(`<meta name="description"`)
			o.attr("content", meta.Description)
			o.raw(">\n")
		}
		if meta.URL != "" {
			o.raw(`<link rel="canonical"`)
			o.url("href", meta.URL)
			o.raw(`><meta property="og:url"`)
			o.attr("content", meta.URL)
			o.raw(">\n")
		}
		o.raw(`<meta property="og:title"`)
		o.attr("content", meta.Title)
		o.raw(">\n")
		if meta.OGType != "" {
			o.raw(`<meta property="og:type"`)
			o.attr("content", meta.OGType)
			o.raw(">\n")
		}
		if meta.Image != "" {
			o.raw(`<meta property="og:image"`)
			o.attr("content", meta.Image)
			o.raw(">\n")
		}
		o.raw(`<link rel="alternate" type="application/rss+xml"`)
		o.attr("title", cfg.Name)
		o.raw(` href="/feed.xml">`, "\n", `<link rel="stylesheet" href="/public/site.css">`, "\n")
		// JSON-LD comes from json.Marshal, which escapes <, > and &.
		if jsonLD != "" {
			o.raw(`<script type="application/ld+json">`, jsonLD, "</script>\n")
		}
		o.raw("</head>\n<body>\n", `<header class="site-header"><a class="brand" href="/">`)
		o.text(cfg.Name)
		o.raw(`</a><nav>`)
		for _, s := range navSections {
			o.raw("<a")
			o.url("href", s.Path)
			o.raw(">")
			o.text(string(s.Label))
			o.raw("</a> ")
		}
		o.raw(`<a href="/tags/">Tags</a></nav></header>`, "\n<main>")
		o.render(body)
		o.raw("</main>\n", `<footer class="site-footer">&copy; `)
		o.text(cfg.Name)
		o.raw("</footer>\n</body>\n</html>\n")
	})
}

var navSections = append(append([]frontpage.Section(nil), frontpage.Sections...), frontpage.SectionFor(curation.Blog))

func tagLink(o *out, tag string) {
	o.raw(`<a class="tag"`)
	o.url("href", "/tags/"+frontpage.PathEscape(strings.ToLower(tag))+"/")
	o.raw(">")
	o.text(tag)
	o.raw("</a>")
}

func card(o *out, p frontpage.Post) {
	o.raw(`<article class="card">`)
	if img := p.PrimaryImage(); img != "" {
		o.raw("<img")
		o.url("src", img)
		o.raw(` alt="" loading="lazy">`)
	}
	o.raw("<h3><a")
	o.url("href", p.Link)
	o.raw(">")
	o.text(p.Title)
	o.raw(`</a></h3><p class="meta"><time`)
	o.attr("datetime", p.Date)
	o.raw(">")
	o.text(p.Date)
	o.raw("</time>")
	if len(p.Tags) > 0 {
		o.raw(" &bull; ")
		tagLink(o, p.Tags[0])
	}
	o.raw("</p><p>")
	o.text(p.Summary)
	o.raw("</p></article>\n")
}

func cards(o *out, posts []frontpage.Post) {
	if len(posts) == 0 {
		o.raw("<p>No posts found.</p>")
		return
	}
	for _, p := range posts {
		card(o, p)
	}
}

func front(fp frontpage.FrontPage, label curation.Label, heading, description string) templ.Component {
	return component(func(o *out) {
		if len(fp.Carousel) > 0 {
			showcase(o, fp.Carousel, fp.Showcase, label)
		}
		o.raw(`<section class="columns">`)
		for _, col := range fp.Columns {
			if len(col.Posts) == 0 {
				continue
			}
			o.raw(`<div class="column"><h2`)
			o.attr("style", "color: "+col.Color)
			o.raw(">")
			o.text(string(col.Label))
			o.raw("</h2>")
			for _, p := range col.Posts {
				card(o, p)
			}
			if col.MoreURL != "" {
				o.raw(`<a class="more"`)
				o.url("href", col.MoreURL)
				o.raw(">View more ")
				o.text(string(col.Label))
				o.raw(" &rarr;</a>")
			}
			o.raw("</div>")
		}
		o.raw(`</section><section class="latest"><h1>`)
		o.text(heading)
		o.raw("</h1>")
		if description != "" {
			o.raw("<p>")
			o.text(description)
			o.raw("</p>")
		}
		cards(o, fp.Latest)
		o.raw("</section>\n")
	})
}

func slideHref(i int) string {
	return "?slide=" + strconv.Itoa(i)
}

// showcase renders the carousel opened on nav.Index. Without script the
// prev, next and dot links reload the page on another slide; showcase.js
// takes them over and resumes the stream from the chosen slide.
func showcase(o *out, items []curation.CarouselItem, nav frontpage.ShowcaseNav, label curation.Label) {
	o.raw(`<section class="showcase"`)
	o.attr("data-showcase", string(label))
	o.attr("data-showcase-index", strconv.Itoa(nav.Index))
	o.raw(`><div class="showcase-track">`)
	for i, item := range items {
		o.raw(`<div class="slide" data-showcase-slide`)
		if i != nav.Index {
			o.raw(" hidden")
		}
		o.raw("><img")
		o.url("src", item.Image)
		o.attr("alt", item.Title)
		o.raw("><h2><a")
		o.url("href", "/blog/"+item.Slug+"/")
		o.raw(">")
		o.text(item.Title)
		o.raw("</a></h2></div>")
	}
	o.raw("</div>")
	if len(items) > 1 {
		o.raw(`<a class="prev" rel="prev"`)
		o.url("href", slideHref(nav.Prev))
		o.attr("data-showcase-go", strconv.Itoa(nav.Prev))
		o.raw(` data-showcase-step="-1">&lsaquo;</a><a class="next" rel="next"`)
		o.url("href", slideHref(nav.Next))
		o.attr("data-showcase-go", strconv.Itoa(nav.Next))
		o.raw(` data-showcase-step="1">&rsaquo;</a><div class="dots">`)
		for i := range items {
			o.raw("<a data-showcase-dot")
			if i == nav.Index {
				o.raw(` class="is-active"`)
			}
			o.url("href", slideHref(i))
			o.attr("data-showcase-go", strconv.Itoa(i))
			o.attr("aria-label", "Slide "+strconv.Itoa(i+1))
			o.raw("></a>")
		}
		o.raw("</div>")
	}
	o.raw("</section>\n", `<script src="/public/showcase.js" defer></script>`, "\n")
}

func tagIndex(tags []string) templ.Component {
	return component(func(o *out) {
		o.raw("<h1>Tags</h1>")
		if len(tags) == 0 {
			o.raw("<p>No tags yet.</p>")
			return
		}
		o.raw(`<ul class="tags">`)
		for _, tag := range tags {
			o.raw("<li>")
			tagLink(o, tag)
			o.raw("</li>")
		}
		o.raw("</ul>")
	})
}

func tagList(tag string, posts []frontpage.Post) templ.Component {
	return component(func(o *out) {
		o.raw("<h1>#")
		o.text(tag)
		o.raw("</h1>")
		cards(o, posts)
	})
}

func article(p frontpage.Post, related []frontpage.Post) templ.Component {
	return component(func(o *out) {
		o.raw(`<article class="post"><h1>`)
		o.text(p.Title)
		o.raw(`</h1><p class="meta"><time`)
		o.attr("datetime", p.Date)
		o.raw(">")
		o.text(p.Date)
		o.raw("</time> ")
		for _, tag := range p.Tags {
			tagLink(o, tag)
			o.raw(" ")
		}
		o.raw("</p>")
		for _, img := range p.Images {
			o.raw("<img")
			o.url("src", img)
			o.raw(` alt="">`)
		}
		o.raw(`<div class="body">`)
		o.render(markdown.Markdown(p.Content))
		o.raw("</div></article>\n")
		if len(related) > 0 {
			o.raw(`<section class="related"><h2>You may have missed</h2>`)
			for _, r := range related {
				card(o, r)
			}
			o.raw("</section>\n")
		}
	})
}

func csrfField(o *out, token string) {
	o.raw(`<input type="hidden" name="_csrf"`)
	o.attr("value", token)
	o.raw(">")
}

func login(showError bool, csrf string) templ.Component {
	return component(func(o *out) {
		o.raw(`<form method="post" action="/admin/login/" class="login">`)
		csrfField(o, csrf)
		if showError {
			o.raw(`<p class="error">Wrong password.</p>`)
		}
		o.raw(`<label>Password <input type="password" name="password" autofocus></label>`,
			`<button type="submit">Log in</button></form>`)
	})
}

func dashboard(rows []frontpage.AdminRow, msg, csrf string) templ.Component {
	return component(func(o *out) {
		if msg != "" {
			o.raw(`<p class="notice">`)
			o.text(msg)
			o.raw("</p>")
		}
		o.raw(`<p><a href="/admin/images/">Images</a> <form method="post" action="/admin/logout/" style="display:inline">`)
		csrfField(o, csrf)
		o.raw(`<button>Log out</button></form></p>`,
			`<table class="posts"><thead><tr><th>Date</th><th>Title</th><th>Labels</th><th>Related as</th><th>Status</th></tr></thead><tbody>`)
		for _, row := range rows {
			o.raw("<tr><td>")
			o.text(row.Post.Date)
			o.raw("</td><td><a")
			o.url("href", "/admin/post/"+row.Post.Slug+"/")
			o.raw(">")
			o.text(row.Post.Title)
			o.raw("</a></td><td>")
			o.text(strings.Join(frontpage.LabelNames(row.Labels), ", "))
			o.raw("</td><td>")
			o.text(string(row.Primary))
			o.raw("</td><td>")
			if row.Post.Published {
				o.raw("published")
			} else {
				o.raw("draft")
			}
			o.raw("</td></tr>\n")
		}
		o.raw("</tbody></table><h2>New post</h2>")
		editor(o, frontpage.Post{}, csrf)
	})
}

func field(o *out, label, name, value string) {
	o.raw("<label>")
	o.text(label)
	o.raw(" <input")
	o.attr("name", name)
	o.attr("value", value)
	o.raw("></label>")
}

func area(o *out, label, name, value string) {
	o.raw("<label>")
	o.text(label)
	o.raw(" <textarea")
	o.attr("name", name)
	o.raw(">")
	o.text(value)
	o.raw("</textarea></label>")
}

func editor(o *out, p frontpage.Post, csrf string) {
	o.raw(`<form method="post" action="/admin/save/" class="editor">`)
	csrfField(o, csrf)
	field(o, "Title", "title", p.Title)
	field(o, "Slug", "slug", p.Slug)
	field(o, "Date (YYYY-MM-DD)", "date", p.Date)
	field(o, "Tags", "tags", frontpage.JoinTags(p.Tags))
	area(o, "Images (one URL per line)", "images", strings.Join(p.Images, "\n"))
	area(o, "Summary", "summary", p.Summary)
	area(o, "Content", "content", p.Content)
	o.raw(`<label><input type="checkbox" name="published" value="1"`)
	if p.Published {
		o.raw(" checked")
	}
	o.raw(`> Published</label><button type="submit">Save</button></form>`)
}

func imageList(images []frontpage.Image, csrf string) templ.Component {
	return component(func(o *out) {
		o.raw(`<p><a href="/admin/">&larr; Dashboard</a></p><section class="images">`,
			`<form method="post" action="/admin/images/upload/" enctype="multipart/form-data">`)
		csrfField(o, csrf)
		o.raw(`<input type="file" name="image" accept="image/*"><button type="submit">Upload</button></form><ul>`)
		if len(images) == 0 {
			o.raw("<li>No images yet.</li>")
		}
		for _, img := range images {
			o.raw("<li><img")
			o.url("src", img.URL())
			o.raw(` width="120" alt=""> <code>`)
			o.text(img.URL())
			o.raw("</code> ")
			o.text(strconv.Itoa(img.Width) + "x" + strconv.Itoa(img.Height))
			o.raw("</li>")
		}
		o.raw("</ul></section>")
	})
}
