package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/devhub/admin-console/docs"
	"github.com/devhub/admin-console/internal/api/handler"
	"github.com/devhub/admin-console/internal/api/middleware"
	"github.com/devhub/admin-console/internal/core/ports"
	"github.com/devhub/admin-console/internal/infrastructure/http/handlers"
	"github.com/devhub/admin-console/pkg/logger"
)

// Dependencies are the services and settings the mock backend router needs.
type Dependencies struct {
	Auth       ports.AuthService
	Categories ports.CategoryService
	Posts      ports.PostService
	Accounts   ports.AccountService
	Audit      ports.AuditService

	JWTSecret string
	Latency   time.Duration
	Logger    zerolog.Logger
	// Checks are the readiness probes; nil means always ready.
	Checks map[string]handlers.Check

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	if deps.Registerer == nil {
		deps.Registerer = prometheus.DefaultRegisterer
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(logger.RequestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "mockapi",
		Registerer: deps.Registerer,
	}))

	// --- Health probes, metrics and docs (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Checks)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: deps.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- API ---
	apiGroup := e.Group("/api", middleware.Latency(deps.Latency))

	authHandler := handler.NewAuthHandler(deps.Auth)
	apiGroup.POST("/auth/login", authHandler.Login)

	protected := apiGroup.Group("", middleware.Auth(deps.JWTSecret))

	categoryHandler := handler.NewCategoryHandler(deps.Categories)
	protected.GET("/categories", categoryHandler.List)
	protected.POST("/categories", categoryHandler.Create)
	protected.DELETE("/categories/:id", categoryHandler.Delete)

	postHandler := handler.NewPostHandler(deps.Posts)
	protected.GET("/posts", postHandler.List)
	protected.PUT("/posts/:id/status", postHandler.UpdateStatus)

	userHandler := handler.NewUserHandler(deps.Accounts)
	protected.GET("/users", userHandler.Search)
	protected.PUT("/users/:id/status", userHandler.UpdateStatus)

	auditHandler := handler.NewAuditHandler(deps.Audit)
	protected.GET("/audit", auditHandler.Recent)

	return e
}
