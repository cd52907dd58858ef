package frontpage

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/eringen/frontpage/curation"
)

// ClassifyResponse reports both classifications of a post.
type ClassifyResponse struct {
	Slug    string   `json:"slug"`
	Labels  []string `json:"labels"`
	Primary string   `json:"primary"`
}

// queryInt reads a positive integer query parameter, falling back to def
// when absent.
func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a positive integer")
	}
	return n, nil
}

// queryIndex reads a non-negative slide index, 0 when absent.
func queryIndex(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a non-negative integer")
	}
	return n, nil
}

func parseLabel(raw string) (curation.Label, error) {
	label, err := curation.ParseLabel(raw)
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "unknown label "+strconv.Quote(raw))
	}
	return label, nil
}

func labelParam(c echo.Context) (curation.Label, error) {
	return parseLabel(c.Param("label"))
}

func (a *App) postParam(c echo.Context) (Post, error) {
	post, err := a.Cache.GetPost(c.Param("slug"))
	if errors.Is(err, ErrNotFound) {
		return Post{}, echo.NewHTTPError(http.StatusNotFound, "post not found")
	}
	return post, err
}

func (a *App) handleAPIFrontPage(c echo.Context) error {
	posts, err := a.Cache.ListPosts()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, BuildFrontPage(posts, a.Config))
}

func (a *App) handleAPICarousel(c echo.Context) error {
	limit, err := queryInt(c, "limit", a.Config.CarouselLimit)
	if err != nil {
		return err
	}
	posts, err := a.Cache.ListPosts()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, curation.SelectCarousel(posts, limit))
}

func (a *App) handleAPIColumn(c echo.Context) error {
	label, err := labelParam(c)
	if err != nil {
		return err
	}
	size, err := queryInt(c, "size", a.Config.ColumnSize)
	if err != nil {
		return err
	}
	posts, err := a.Cache.ListPosts()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, curation.SelectColumn(posts, label, size))
}

func (a *App) handleAPISection(c echo.Context) error {
	label, err := labelParam(c)
	if err != nil {
		return err
	}
	posts, err := a.Cache.ListPosts()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, curation.Filter(posts, label))
}

func (a *App) handleAPIRelated(c echo.Context) error {
	post, err := a.postParam(c)
	if err != nil {
		return err
	}
	posts, err := a.Cache.ListPosts()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, curation.SelectRelated(post, posts))
}

func (a *App) handleAPIClassify(c echo.Context) error {
	post, err := a.postParam(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ClassifyResponse{
		Slug:    post.Slug,
		Labels:  LabelNames(curation.Classify(post).Labels()),
		Primary: string(curation.PrimaryCategory(post)),
	})
}
