package pubadmin

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (a *App) handleFormList(c echo.Context) error {
	docs, err := a.Store.List(c.Request().Context(), ColForms)
	if err != nil {
		return err
	}
	return Render(c, a.Views.FormList(SubmissionsFromDocs(docs), CsrfToken(c)))
}

func (a *App) handleFormDetail(c echo.Context) error {
	doc, err := a.Store.Get(c.Request().Context(), ColForms, c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
	}
	if err != nil {
		return err
	}
	return Render(c, a.Views.FormDetail(SubmissionFromDoc(doc), CsrfToken(c)))
}

// handleFormStatus patches the status field only; everything else about a
// submission is immutable after creation.
func (a *App) handleFormStatus(c echo.Context) error {
	status := c.FormValue("status")
	if !ValidStatus(status) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid status")
	}
	err := a.Store.Update(c.Request().Context(), ColForms, c.Param("id"), map[string]any{"status": status})
	if errors.Is(err, ErrNotFound) {
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
	}
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/forms/")
}

func (a *App) handleFormDelete(c echo.Context) error {
	if err := a.Store.Delete(c.Request().Context(), ColForms, c.Param("id")); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/forms/")
}
