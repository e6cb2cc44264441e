package handlers

import (
	"log/slog"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/lateslip-portal/internal/tokenstore"
	"github.com/nfrund/lateslip-portal/internal/view"
	"github.com/nfrund/lateslip-portal/internal/view/dto/auth"
	views "github.com/nfrund/lateslip-portal/web/src/templates/pages"
)

// DashboardHandler handles /adminDashboard. The real dashboard lives
// elsewhere; this either forwards to it or shows a placeholder.
type DashboardHandler struct {
	externalURL string
}

// NewDashboardHandler creates a new DashboardHandler. An empty externalURL
// selects the placeholder page.
func NewDashboardHandler(externalURL string) *DashboardHandler {
	return &DashboardHandler{externalURL: externalURL}
}

// DashboardGet forwards to the external dashboard or renders the placeholder.
func (h *DashboardHandler) DashboardGet(c echo.Context) error {
	if h.externalURL != "" {
		return c.Redirect(http.StatusSeeOther, h.externalURL)
	}

	ctx := c.Request().Context()
	token, ok, err := tokenstore.ForRequest(c).Get(ctx)
	if err != nil {
		slog.WarnContext(ctx, "Failed to read session token", "error", err)
	}

	data := auth.DashboardData{HasToken: ok}
	if ok {
		data.Role = roleClaim(token)
	}
	return renderPage(c, http.StatusOK, views.DashboardTitle, view.GetFlashData(c), views.DashboardContent(data))
}

// roleClaim returns the "role" claim of a JWT without verifying its
// signature. The portal does not hold the backend's signing key.
func roleClaim(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	role, _ := claims["role"].(string)
	return role
}
