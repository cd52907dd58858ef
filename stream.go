package frontpage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/frontpage/curation"
)

type slideEvent struct {
	Index int                   `json:"index"`
	Item  curation.CarouselItem `json:"item"`
}

// handleShowcaseStream pushes the showcase auto-advance as Server-Sent
// Events. Every connection is a separate display session with its own
// rotation; the timer stops when the client disconnects. label narrows the
// carousel to a section's posts, and start resumes the rotation after a
// manual jump.
func (a *App) handleShowcaseStream(c echo.Context) error {
	limit, err := queryInt(c, "n", a.Config.CarouselLimit)
	if err != nil {
		return err
	}
	start, err := queryIndex(c, "start")
	if err != nil {
		return err
	}
	posts, err := a.Cache.ListPosts()
	if err != nil {
		return err
	}
	if raw := c.QueryParam("label"); raw != "" {
		label, err := parseLabel(raw)
		if err != nil {
			return err
		}
		posts = curation.Filter(posts, label)
	}
	items := curation.SelectCarousel(posts, limit)
	if len(items) == 0 {
		return c.NoContent(http.StatusNoContent)
	}

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	first := curation.NewRotation(len(items)).Go(start)
	if err := writeSlide(w, first, items[first]); err != nil {
		return nil
	}
	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()
	for idx := range curation.RotateFrom(ctx, len(items), first, a.Config.RotationInterval) {
		if err := writeSlide(w, idx, items[idx]); err != nil {
			a.Logger.Debug("showcase stream closed", zap.Error(err))
			break
		}
	}
	return nil
}

func writeSlide(w *echo.Response, idx int, item curation.CarouselItem) error {
	data, err := json.Marshal(slideEvent{Index: idx, Item: item})
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: slide\ndata: %s\n\n", data); err != nil {
		return err
	}
	w.Flush()
	return nil
}
