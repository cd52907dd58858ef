package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/eringen/frontpage"
	"github.com/eringen/frontpage/curation"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return buf.String()
}

func samplePosts() []frontpage.Post {
	return []frontpage.Post{
		{Slug: "red-carpet", Title: "Red Carpet", Date: "2024-05-02", Tags: []string{"Hollywood"}, Images: []string{"/img/rc.jpg"}, Link: "/blog/red-carpet/"},
		{Slug: "rockies", Title: "Rockies <Trip>", Date: "2024-05-01", Tags: []string{"Canada Travel"}, Link: "/blog/rockies/"},
	}
}

func TestHomeRendersSurfaces(t *testing.T) {
	cfg := frontpage.SiteConfig{Name: "Daily Buzz", URL: "https://example.com", CarouselLimit: 5, ColumnSize: 5, LatestCount: 5}
	v := New(cfg)
	page := frontpage.BuildFrontPage(samplePosts(), cfg)

	out := render(t, v.Home(page, frontpage.PageMeta{Title: "Daily Buzz"}))

	for _, want := range []string{
		"<title>Daily Buzz</title>",
		"data-showcase",
		`src="/img/rc.jpg"`,
		">Hollywood</h2>",
		">World</h2>",
		"Rockies &lt;Trip&gt;",
		"/public/showcase.js",
		`"@type":"WebSite"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("home output missing %q", want)
		}
	}
	if strings.Contains(out, ">Exclusive</h2>") {
		t.Error("empty Exclusive column should be hidden")
	}
}

func TestHomeWithoutImagesHidesShowcase(t *testing.T) {
	cfg := frontpage.SiteConfig{Name: "x", CarouselLimit: 5, ColumnSize: 5, LatestCount: 5}
	posts := samplePosts()[1:]
	out := render(t, New(cfg).Home(frontpage.BuildFrontPage(posts, cfg), frontpage.PageMeta{}))
	if strings.Contains(out, "data-showcase") {
		t.Error("showcase should not render without image posts")
	}
}

func TestPostRendersRelated(t *testing.T) {
	cfg := frontpage.SiteConfig{Name: "x", URL: "https://example.com"}
	posts := samplePosts()
	posts[0].Content = "Stars **everywhere**.\n\n<script>x()</script>"
	out := render(t, New(cfg).Post(posts[0], posts[1:], frontpage.PageMeta{Title: posts[0].Title}))
	if !strings.Contains(out, "<strong>everywhere</strong>") {
		t.Error("post body should be rendered as markdown")
	}
	if strings.Contains(out, "<script>x()") {
		t.Error("raw HTML in the body should be dropped")
	}
	if !strings.Contains(out, "You may have missed") {
		t.Error("related panel missing")
	}
	if !strings.Contains(out, `href="/blog/rockies/"`) {
		t.Error("related link missing")
	}
	if !strings.Contains(out, `"@type":"NewsArticle"`) {
		t.Error("article JSON-LD missing")
	}

	alone := render(t, New(cfg).Post(posts[0], nil, frontpage.PageMeta{}))
	if strings.Contains(alone, "You may have missed") {
		t.Error("related panel should be hidden when empty")
	}
}

func TestDashboardShowsLabels(t *testing.T) {
	rows := []frontpage.AdminRow{{
		Post:    frontpage.Post{Slug: "a", Title: "A", Date: "2024-01-01", Published: true},
		Labels:  []curation.Label{curation.Celebverse, curation.Gossips},
		Primary: curation.Celebverse,
	}}
	out := render(t, New(frontpage.SiteConfig{Name: "x"}).AdminDashboard(rows, "saved", "tok"))
	for _, want := range []string{"Celebverse, Gossips", "<td>Celebverse</td>", "saved", `value="tok"`} {
		if !strings.Contains(out, want) {
			t.Errorf("dashboard output missing %q", want)
		}
	}
}

func TestShowcaseControls(t *testing.T) {
	cfg := frontpage.SiteConfig{Name: "x", CarouselLimit: 5, ColumnSize: 5, LatestCount: 5}
	posts := samplePosts()
	posts[1].Images = []string{"/img/rockies.jpg"}
	posts = append(posts, frontpage.Post{Slug: "gala", Title: "Gala", Date: "2024-04-30", Tags: []string{"Hollywood"}, Images: []string{"/img/gala.jpg"}, Link: "/blog/gala/"})
	page := frontpage.BuildFrontPage(posts, cfg).WithSlide(2)

	out := render(t, New(cfg).Home(page, frontpage.PageMeta{}))

	for _, want := range []string{
		`data-showcase-index="2"`,
		`class="prev" rel="prev" href="?slide=1"`,
		`class="next" rel="next" href="?slide=0"`,
		`<a data-showcase-dot class="is-active" href="?slide=2"`,
		`<div class="slide" data-showcase-slide><img src="/img/gala.jpg"`,
		`<div class="slide" data-showcase-slide hidden><img src="/img/rc.jpg"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("showcase output missing %q", want)
		}
	}
}

func TestSingleSlideHasNoControls(t *testing.T) {
	cfg := frontpage.SiteConfig{Name: "x", CarouselLimit: 5, ColumnSize: 5, LatestCount: 5}
	out := render(t, New(cfg).Home(frontpage.BuildFrontPage(samplePosts(), cfg), frontpage.PageMeta{}))
	if strings.Contains(out, "data-showcase-go") {
		t.Error("a single slide should not get prev, next or dot links")
	}
}

func TestSectionShowcaseCarriesLabel(t *testing.T) {
	cfg := frontpage.SiteConfig{Name: "x", CarouselLimit: 5, ColumnSize: 5, LatestCount: 5}
	section := frontpage.SectionFor(curation.Celebverse)
	out := render(t, New(cfg).Section(section, frontpage.BuildFrontPage(samplePosts(), cfg), frontpage.PageMeta{}))
	if !strings.Contains(out, `data-showcase="Celebverse"`) {
		t.Error("section showcase should name its label for the stream")
	}

	home := render(t, New(cfg).Home(frontpage.BuildFrontPage(samplePosts(), cfg), frontpage.PageMeta{}))
	if !strings.Contains(home, `data-showcase=""`) {
		t.Error("home showcase should stream every post")
	}
}

func TestTagIndex(t *testing.T) {
	v := New(frontpage.SiteConfig{Name: "x"})
	out := render(t, v.TagIndex([]string{"canada travel", "hollywood"}, frontpage.PageMeta{Title: "Tags"}))
	for _, want := range []string{`href="/tags/canada%20travel/">canada travel</a>`, `href="/tags/hollywood/"`} {
		if !strings.Contains(out, want) {
			t.Errorf("tag index missing %q", want)
		}
	}
	if empty := render(t, v.TagIndex(nil, frontpage.PageMeta{})); !strings.Contains(empty, "No tags yet.") {
		t.Error("empty tag index should say so")
	}
}
