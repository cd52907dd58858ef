package frontpage

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/frontpage/content"
	"github.com/eringen/frontpage/curation"
)

// AdminRow is a dashboard line: the post plus how the site will file it.
type AdminRow struct {
	Post    Post
	Labels  []curation.Label
	Primary curation.Label
}

func adminRows(posts []Post) []AdminRow {
	rows := make([]AdminRow, len(posts))
	for i, p := range posts {
		rows[i] = AdminRow{
			Post:    p,
			Labels:  curation.Classify(p).Labels(),
			Primary: curation.PrimaryCategory(p),
		}
	}
	return rows
}

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, a.Views.AdminLogin(false, CsrfToken(c)))
	}
	return a.renderAdminDashboard(c, c.QueryParam("msg"))
}

func (a *App) handleAdminPost(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	post, err := a.Store.GetPostAny(c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.NoContent(http.StatusNotFound)
		}
		return err
	}
	return Render(c, a.Views.AdminForm(post, CsrfToken(c)))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	a.Logger.Warn("failed admin login", zap.String("ip", c.RealIP()))
	return Render(c, a.Views.AdminLogin(true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

// postFromForm reads the editor form. Tags are comma separated, images one
// URL per line.
func postFromForm(c echo.Context) (Post, string) {
	title := strings.TrimSpace(c.FormValue("title"))
	slug := strings.TrimSpace(c.FormValue("slug"))
	if slug == "" {
		slug = content.Slugify(title)
	}
	if slug == "" {
		return Post{}, "Slug is required. Add a title or slug."
	}
	date := strings.TrimSpace(c.FormValue("date"))
	if date == "" {
		date = time.Now().Format(content.DateLayout)
	}
	if _, err := time.Parse(content.DateLayout, date); err != nil {
		return Post{}, "Invalid date format. Use YYYY-MM-DD."
	}
	return Post{
		Slug:      slug,
		Title:     title,
		Date:      date,
		Tags:      SplitList(c.FormValue("tags"), ","),
		Images:    SplitList(strings.ReplaceAll(c.FormValue("images"), "\r\n", "\n"), "\n"),
		Summary:   c.FormValue("summary"),
		Content:   c.FormValue("content"),
		Link:      content.PostLink(slug),
		Published: c.FormValue("published") != "",
	}, ""
}

func (a *App) handleAdminSave(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if err := c.Request().ParseForm(); err != nil {
		return err
	}
	post, problem := postFromForm(c)
	if problem != "" {
		return a.renderAdminDashboard(c, problem)
	}
	if err := a.Store.SavePost(post); err != nil {
		return err
	}
	a.Cache.Invalidate()
	a.Logger.Info("post saved",
		zap.String("slug", post.Slug),
		zap.Strings("labels", LabelNames(curation.Classify(post).Labels())),
		zap.String("primary", string(curation.PrimaryCategory(post))),
	)
	return a.renderAdminDashboard(c, "saved")
}

func (a *App) handleAdminDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	slug := c.Param("slug")
	if err := a.Store.DeletePost(slug); err != nil {
		return err
	}
	a.Cache.Invalidate()
	a.Logger.Info("post deleted", zap.String("slug", slug))
	return a.renderAdminDashboard(c, "deleted")
}

func (a *App) renderAdminDashboard(c echo.Context, msg string) error {
	posts, err := a.Store.ListAllPosts()
	if err != nil {
		return err
	}
	return Render(c, a.Views.AdminDashboard(adminRows(posts), msg, CsrfToken(c)))
}
