package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/yogaflow/studio-api/internal/api/handler"
	"github.com/yogaflow/studio-api/internal/api/middleware"
	"github.com/yogaflow/studio-api/internal/auth"
)

// Deps carries the wired services the router exposes. Readiness may be nil
// when no dependency probe is available (tests).
type Deps struct {
	AuthService    *handler.AuthHandler
	SessionHandler *handler.SessionHandler
	TeacherHandler *handler.TeacherHandler
	UserHandler    *handler.UserHandler
	Readiness      *handler.ReadinessHandler

	Codec  *auth.Codec
	Loader middleware.IdentityLoader
	Logger zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered. The
// authenticator runs on every request and never rejects by itself; protected
// groups reject via RequireAuth/RequireAdmin.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(middleware.Authenticate(d.Codec, d.Loader, d.Logger))

	// --- Auth routes (public) ---
	e.POST("/api/auth/register", d.AuthService.Register)
	e.POST("/api/auth/login", d.AuthService.Login)

	// --- Authenticated routes ---
	authed := e.Group("/api", middleware.RequireAuth())

	authed.GET("/session", d.SessionHandler.FindAll)
	authed.GET("/session/:id", d.SessionHandler.FindByID)
	authed.POST("/session/:id/participate/:userId", d.SessionHandler.Participate)
	authed.DELETE("/session/:id/participate/:userId", d.SessionHandler.Unparticipate)

	authed.GET("/teacher", d.TeacherHandler.FindAll)
	authed.GET("/teacher/:id", d.TeacherHandler.FindByID)

	authed.GET("/user/:id", d.UserHandler.FindByID)
	authed.DELETE("/user/:id", d.UserHandler.Delete)

	// --- Admin routes ---
	admin := e.Group("/api", middleware.RequireAdmin())
	admin.POST("/session", d.SessionHandler.Create)
	admin.PUT("/session/:id", d.SessionHandler.Update)
	admin.DELETE("/session/:id", d.SessionHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	if d.Readiness != nil {
		e.GET("/health/ready", d.Readiness.Readiness)
	}

	return e
}
