package frontpage

import (
	"strings"

	"github.com/eringen/frontpage/curation"
)

// ColumnSpec describes one front-page column.
type ColumnSpec struct {
	Label curation.Label
	Color string
}

// FrontColumns are the labeled columns under the showcase, left to right.
var FrontColumns = []ColumnSpec{
	{Label: curation.Hollywood, Color: "#DC2626"},
	{Label: curation.World, Color: "#2563EB"},
	{Label: curation.Exclusive, Color: "#7C3AED"},
}

// Section is a page listing only the posts of one category.
type Section struct {
	Label       curation.Label
	Path        string
	Title       string
	Description string
}

// Sections are the dedicated category pages.
var Sections = []Section{
	{
		Label:       curation.Celebverse,
		Path:        "/celebverse/",
		Title:       "Celebverse - Celebrity News & Entertainment",
		Description: "Your ultimate destination for celebrity news, Hollywood updates, and entertainment gossip.",
	},
	{
		Label:       curation.Gossips,
		Path:        "/gossips/",
		Title:       "Gossips! - Latest Entertainment News & Buzz",
		Description: "Stay updated with the latest entertainment news, celebrity gossip, and breaking stories from the world of showbiz.",
	},
}

// SectionFor returns the dedicated section of label, or a generic one
// served under /section/<label>/.
func SectionFor(label curation.Label) Section {
	for _, s := range Sections {
		if s.Label == label {
			return s
		}
	}
	return Section{
		Label: label,
		Path:  "/section/" + strings.ToLower(string(label)) + "/",
		Title: string(label),
	}
}

// FrontColumn is a selected column plus its presentation color.
type FrontColumn struct {
	curation.Column
	Color string `json:"color"`
	// MoreURL is the full section linked from "view more"; empty when the
	// column shows every match.
	MoreURL string `json:"moreUrl,omitempty"`
}

// ShowcaseNav is the slide a server-rendered showcase opens on and the
// slides its previous and next controls lead to.
type ShowcaseNav struct {
	Index int `json:"index"`
	Prev  int `json:"prev"`
	Next  int `json:"next"`
}

// NavigateShowcase positions a showcase of n slides on slide (taken modulo
// n). With no slides every field is 0.
func NavigateShowcase(n, slide int) ShowcaseNav {
	r := curation.NewRotation(n)
	nav := ShowcaseNav{Index: r.Go(slide)}
	nav.Prev = r.Retreat()
	r.Go(nav.Index)
	nav.Next = r.Advance()
	return nav
}

// FrontPage is everything the home layout renders.
type FrontPage struct {
	Carousel []curation.CarouselItem `json:"carousel"`
	Showcase ShowcaseNav             `json:"showcase"`
	Columns  []FrontColumn           `json:"columns"`
	Latest   []Post                  `json:"latest"`
}

// WithSlide returns p with its showcase opened on slide.
func (p FrontPage) WithSlide(slide int) FrontPage {
	p.Showcase = NavigateShowcase(len(p.Carousel), slide)
	return p
}

// BuildFrontPage runs the showcase, column and latest selections over one
// date-descending snapshot.
func BuildFrontPage(posts []Post, cfg SiteConfig) FrontPage {
	page := FrontPage{
		Carousel: curation.SelectCarousel(posts, cfg.CarouselLimit),
		Columns:  make([]FrontColumn, 0, len(FrontColumns)),
		Latest:   posts[:max(0, min(cfg.LatestCount, len(posts)))],
	}
	page.Showcase = NavigateShowcase(len(page.Carousel), 0)
	for _, spec := range FrontColumns {
		col := FrontColumn{
			Column: curation.SelectColumn(posts, spec.Label, cfg.ColumnSize),
			Color:  spec.Color,
		}
		if col.HasMore {
			col.MoreURL = SectionFor(spec.Label).Path
		}
		page.Columns = append(page.Columns, col)
	}
	return page
}
