package pubadmin

import (
	"errors"

	"github.com/labstack/echo/v4"
)

// handleDashboard renders the four summary tiles: three collection counts and
// the visitor counter. The counter is a singleton document maintained by the
// public site; a missing document reads as zero.
func (a *App) handleDashboard(c echo.Context) error {
	ctx := c.Request().Context()

	var stats DashboardStats
	var err error
	if stats.Blogs, err = a.Store.Count(ctx, ColBlogs); err != nil {
		return err
	}
	if stats.Subscribers, err = a.Store.Count(ctx, ColSubscribers); err != nil {
		return err
	}
	if stats.Forms, err = a.Store.Count(ctx, ColForms); err != nil {
		return err
	}

	counter, err := a.Store.Get(ctx, ColVisitorCount, visitorCounterID)
	switch {
	case errors.Is(err, ErrNotFound):
		stats.Visitors = 0
	case err != nil:
		return err
	default:
		stats.Visitors = fieldInt(counter.Fields, "count")
	}

	return Render(c, a.Views.Dashboard(stats, CsrfToken(c)))
}
