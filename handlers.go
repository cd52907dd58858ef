package frontpage

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/frontpage/curation"
)

func (a *App) handleHome(c echo.Context) error {
	posts, err := a.Cache.ListPosts()
	if err != nil {
		return err
	}
	meta := PageMeta{
		Title:       a.Config.Name,
		Description: a.Config.Description,
		URL:         BuildURL(a.Config.URL),
		OGType:      "website",
	}
	page := BuildFrontPage(posts, a.Config).WithSlide(slideParam(c))
	if len(page.Carousel) > 0 {
		meta.Image = AbsoluteURL(a.Config.URL, page.Carousel[0].Image)
	}
	return Render(c, a.Views.Home(page, meta))
}

func (a *App) sectionHandler(s Section) echo.HandlerFunc {
	return func(c echo.Context) error {
		return a.renderSection(c, s)
	}
}

func (a *App) handleSection(c echo.Context) error {
	label, err := curation.ParseLabel(c.Param("label"))
	if err != nil {
		return echo.ErrNotFound
	}
	s := SectionFor(label)
	// Dedicated sections have a canonical path of their own.
	if s.Path != c.Request().URL.Path {
		return c.Redirect(http.StatusMovedPermanently, s.Path)
	}
	return a.renderSection(c, s)
}

func (a *App) renderSection(c echo.Context, s Section) error {
	posts, err := a.Cache.ListPosts()
	if err != nil {
		return err
	}
	page := BuildFrontPage(curation.Filter(posts, s.Label), a.Config).WithSlide(slideParam(c))
	meta := PageMeta{
		Title:       s.Title,
		Description: s.Description,
		URL:         AbsoluteURL(a.Config.URL, s.Path),
		OGType:      "website",
	}
	return Render(c, a.Views.Section(s, page, meta))
}

// slideParam is the showcase slide requested by the prev, next and dot
// links. Anything unparsable opens the first slide.
func slideParam(c echo.Context) int {
	n, err := strconv.Atoi(c.QueryParam("slide"))
	if err != nil {
		return 0
	}
	return n
}

func (a *App) handleTagIndex(c echo.Context) error {
	tags, err := a.Store.ListTags()
	if err != nil {
		return err
	}
	meta := PageMeta{
		Title:  "Tags - " + a.Config.Name,
		URL:    BuildURL(a.Config.URL, "tags"),
		OGType: "website",
	}
	return Render(c, a.Views.TagIndex(tags, meta))
}

// handleTag lists posts carrying an exact tag, ignoring case.
func (a *App) handleTag(c echo.Context) error {
	tag := strings.ToLower(strings.TrimSpace(c.Param("tag")))
	posts, err := a.Cache.ListPosts()
	if err != nil {
		return err
	}
	var tagged []Post
	for _, p := range posts {
		for _, t := range p.Tags {
			if strings.ToLower(strings.TrimSpace(t)) == tag {
				tagged = append(tagged, p)
				break
			}
		}
	}
	meta := PageMeta{
		Title:  fmt.Sprintf("%s - %s", tag, a.Config.Name),
		URL:    BuildURL(a.Config.URL, "tags", tag),
		OGType: "website",
	}
	return Render(c, a.Views.TagList(tag, tagged, meta))
}

func (a *App) handlePost(c echo.Context) error {
	slug := c.Param("slug")
	post, err := a.Cache.GetPost(slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		}
		return err
	}
	posts, err := a.Cache.ListPosts()
	if err != nil {
		return err
	}
	meta := PageMeta{
		Title:       post.Title,
		Description: post.Summary,
		URL:         BuildURL(a.Config.URL, "blog", post.Slug),
		OGType:      "article",
	}
	if img := post.PrimaryImage(); img != "" {
		meta.Image = AbsoluteURL(a.Config.URL, img)
	}
	return Render(c, a.Views.Post(post, curation.SelectRelated(post, posts), meta))
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Cache.ListPosts()
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.ListPosts()
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

func handleBlogRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/")
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.Config.StaticDir + "/favicon.svg")
}

// handleRobots generates robots.txt from the site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\nDisallow: /api/\n\nSitemap: %s\n", strings.TrimRight(a.Config.URL, "/")+"/sitemap.xml")
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		a.Echo.DefaultHTTPErrorHandler(err, c)
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error("server error", zap.String("uri", c.Request().RequestURI), zap.Error(err))
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
