package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/lateslip-portal/internal/view"
	"github.com/nfrund/lateslip-portal/web/src/templates/layouts"
	g "maragu.dev/gomponents"
)

// renderPage wraps gomponents content in the Base layout and renders it
// through the echo renderer.
func renderPage(c echo.Context, status int, title string, flashes view.FlashData, content g.Node) error {
	pageContent := view.AdaptGomponentToTempl(content)
	finalComponent := layouts.Base(title, flashes, pageContent)
	return c.Render(status, "", finalComponent)
}

// redirect sends the browser to path. Requests made by htmx get an
// HX-Redirect header so the whole page is replaced, everyone else a 303.
func redirect(c echo.Context, path string) error {
	if c.Request().Header.Get("HX-Request") == "true" {
		c.Response().Header().Set("HX-Redirect", path)
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, path)
}
