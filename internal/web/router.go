// Package web is the admin console's HTTP server: server-rendered pages
// backed by per-browser workspaces.
package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/devhub/admin-console/internal/infrastructure/http/handlers"
	"github.com/devhub/admin-console/internal/web/handler"
	"github.com/devhub/admin-console/internal/web/middleware"
	"github.com/devhub/admin-console/internal/web/state"
	"github.com/devhub/admin-console/pkg/logger"
)

type SessionConfig struct {
	Lifetime    time.Duration
	IdleTimeout time.Duration
	Secure      bool
	// Store defaults to scs' in-memory store.
	Store scs.Store
}

// NewSessionManager configures the browser session cookie.
func NewSessionManager(cfg SessionConfig) *scs.SessionManager {
	sm := scs.New()
	if cfg.Store != nil {
		sm.Store = cfg.Store
	}
	if cfg.Lifetime > 0 {
		sm.Lifetime = cfg.Lifetime
	}
	if cfg.IdleTimeout > 0 {
		sm.IdleTimeout = cfg.IdleTimeout
	}
	sm.Cookie.Name = "console_session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = cfg.Secure
	return sm
}

type Dependencies struct {
	Sessions *scs.SessionManager
	Registry *state.Registry
	Logger   zerolog.Logger
	// Checks are the readiness probes; nil means always ready.
	Checks map[string]handlers.Check

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds the console's Echo instance with all routes registered.
func NewRouter(deps Dependencies) (*echo.Echo, error) {
	if deps.Registerer == nil {
		deps.Registerer = prometheus.DefaultRegisterer
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	renderer, err := NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("web: build renderer: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.HTTPErrorHandler = newErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(logger.RequestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "console",
		Registerer: deps.Registerer,
	}))

	// --- Health probes and metrics (no session) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Checks)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: deps.Gatherer}))

	// --- Console pages ---
	pages := e.Group("", middleware.Sessions(deps.Sessions), middleware.LoadWorkspace(deps.Registry))

	authHandler := handler.NewAuthHandler(deps.Sessions, deps.Logger)
	pages.GET("/", authHandler.Root)
	pages.GET("/login", authHandler.LoginPage)
	pages.POST("/login", authHandler.Login)
	pages.POST("/logout", authHandler.Logout)

	admin := pages.Group("/admin", middleware.RequireSession())

	adminHandler := handler.NewAdminHandler()
	admin.GET("", adminHandler.Index)
	admin.GET("/dashboard", adminHandler.Dashboard)

	admin.GET("/categories", adminHandler.Categories)
	admin.POST("/categories", adminHandler.CreateCategory)
	admin.POST("/categories/form", adminHandler.ToggleCategoryForm)
	admin.POST("/categories/form/close", adminHandler.CloseCategoryForm)
	admin.POST("/categories/:id/delete", adminHandler.DeleteCategory)

	admin.GET("/posts", adminHandler.Posts)
	admin.POST("/posts/ban", adminHandler.BanAuthor)
	admin.POST("/posts/:id/select", adminHandler.SelectPost)
	admin.POST("/posts/:id/approve", adminHandler.ApprovePost)
	admin.POST("/posts/:id/reject", adminHandler.RejectPost)

	admin.GET("/users", adminHandler.Users)
	admin.POST("/users/search", adminHandler.SearchUsers)
	admin.POST("/users/clear", adminHandler.ClearUsers)
	admin.POST("/users/:id/toggle", adminHandler.ToggleUser)

	return e, nil
}
