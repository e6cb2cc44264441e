package server

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/lateslip-portal/internal/config"
	"github.com/nfrund/lateslip-portal/internal/handlers"
	appmw "github.com/nfrund/lateslip-portal/internal/middleware"
	"github.com/nfrund/lateslip-portal/internal/rendering"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E                *echo.Echo
	Cfg              *config.Config
	authHandler      *handlers.AuthHandler
	dashboardHandler *handlers.DashboardHandler
}

// New creates a new Server instance with its middleware chain and routes.
func New(cfg *config.Config, authHandler *handlers.AuthHandler, dashboardHandler *handlers.DashboardHandler) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(appmw.Logger)

	// Configure and use session middleware. The same store backs the auth
	// token and the flash messages.
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.SessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.SessionSecure,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	e.Renderer = rendering.NewUniversalRenderer()
	setupErrorHandling(e)

	s := &Server{
		E:                e,
		Cfg:              cfg,
		authHandler:      authHandler,
		dashboardHandler: dashboardHandler,
	}
	s.RegisterRoutes()
	return s
}

// setupErrorHandling installs an error handler that logs unhandled errors
// with a stack trace. HTTP errors keep their status and message.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			}
		} else {
			slog.ErrorContext(c.Request().Context(), "Internal Server Error (Unhandled)",
				"error", err.Error(),
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.String(code, message)
	}
}
