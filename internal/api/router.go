package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/99minutos/auth-service/internal/api/docs"
	"github.com/99minutos/auth-service/internal/api/handler"
	"github.com/99minutos/auth-service/internal/api/middleware"
	"github.com/99minutos/auth-service/internal/core/domain"
	"github.com/99minutos/auth-service/internal/core/ports"
)

// Options carries the dependencies of the HTTP surface.
type Options struct {
	AuthService ports.AuthService
	Verifier    ports.TokenVerifier
	// PromotionRoles may call make-creator and make-admin. Defaults to ADMIN.
	PromotionRoles []domain.Role
	Pingers        []handler.Pinger
	Logger         zerolog.Logger
	// Registry receives the HTTP metrics. Nil means the default registry.
	Registry *prometheus.Registry
}

// NewRouter builds the Echo instance with all routes registered.
//
// @title        Auth API
// @version      1.0
// @description  User registration, login and role management with HS256 bearer tokens.
// @BasePath     /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(opts.Logger))

	promCfg := echoprometheus.MiddlewareConfig{
		Subsystem: "auth_api",
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}
	metricsCfg := echoprometheus.HandlerConfig{}
	if opts.Registry != nil {
		promCfg.Registerer = opts.Registry
		metricsCfg.Gatherer = opts.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(promCfg))

	promotion := opts.PromotionRoles
	if len(promotion) == 0 {
		promotion = []domain.Role{domain.RoleAdmin}
	}
	requireAuth := middleware.Auth(opts.Verifier)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(opts.AuthService)
	accessHandler := handler.NewAccessHandler()

	auth := e.Group("/api/auth")
	auth.POST("/seed-roles", authHandler.SeedRoles)
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/make-creator", authHandler.MakeCreator, requireAuth, middleware.RequireRoles(promotion...))
	auth.POST("/make-admin", authHandler.MakeAdmin, requireAuth, middleware.RequireRoles(promotion...))
	auth.GET("/me", accessHandler.Me, requireAuth)

	// --- Role-gated endpoints ---
	access := e.Group("/api/access")
	access.GET("/public", accessHandler.Public)
	access.GET("/customer", accessHandler.ForRole(domain.RoleCustomer), requireAuth, middleware.RequireRoles(domain.RoleCustomer))
	access.GET("/creator", accessHandler.ForRole(domain.RoleCreator), requireAuth, middleware.RequireRoles(domain.RoleCreator))
	access.GET("/admin", accessHandler.ForRole(domain.RoleAdmin), requireAuth, middleware.RequireRoles(domain.RoleAdmin))

	// --- Health checks (no auth required) ---
	healthHandler := handler.NewHealthHandler(opts.Pingers...)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(metricsCfg))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
