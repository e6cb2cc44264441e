package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/lateslip-portal/internal/domain"
	"github.com/nfrund/lateslip-portal/internal/middleware"
	"github.com/nfrund/lateslip-portal/web"
)

// Route is one entry of the application's route table.
type Route struct {
	Method      string
	Path        string
	Handler     echo.HandlerFunc
	RateLimited bool
}

// Routes returns the application routes. There are no auth guards: every
// page is reachable without a session.
func (s *Server) Routes() []Route {
	return []Route{
		{Method: http.MethodGet, Path: domain.PathRoot, Handler: s.authHandler.RegisterGet},
		{Method: http.MethodPost, Path: domain.PathRoot, Handler: s.authHandler.RegisterPost, RateLimited: true},
		{Method: http.MethodGet, Path: domain.PathLogin, Handler: s.authHandler.LoginGet},
		{Method: http.MethodPost, Path: domain.PathLogin, Handler: s.authHandler.LoginPost, RateLimited: true},
		{Method: http.MethodGet, Path: domain.PathSignUp, Handler: s.authHandler.RegisterGet},
		{Method: http.MethodPost, Path: domain.PathSignUp, Handler: s.authHandler.RegisterPost, RateLimited: true},
		{Method: http.MethodGet, Path: domain.PathAdminDashboard, Handler: s.dashboardHandler.DashboardGet},
		{Method: http.MethodGet, Path: "/health", Handler: func(c echo.Context) error {
			return c.String(http.StatusOK, "OK")
		}},
	}
}

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	// One limiter shared by every submit route, so /, /login and /signUp draw
	// from the same per-client budget.
	rateLimiter := middleware.RateLimiter(s.Cfg.RateLimitPerMinute)

	for _, r := range s.Routes() {
		var mw []echo.MiddlewareFunc
		if r.RateLimited {
			mw = append(mw, rateLimiter)
		}
		s.E.Add(r.Method, r.Path, r.Handler, mw...)
	}

	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))
}
