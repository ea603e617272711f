package pubadmin

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (a *App) handleSubscriberList(c echo.Context) error {
	docs, err := a.Store.List(c.Request().Context(), ColSubscribers)
	if err != nil {
		return err
	}
	return Render(c, a.Views.Subscribers(SubscribersFromDocs(docs), CsrfToken(c)))
}

func (a *App) handleSubscriberDelete(c echo.Context) error {
	if err := a.Store.Delete(c.Request().Context(), ColSubscribers, c.Param("id")); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/subscribers/")
}
