package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/profilehub/profile-service/internal/api/handler"
	"github.com/profilehub/profile-service/internal/api/middleware"
	"github.com/profilehub/profile-service/internal/core/ports"
	"github.com/profilehub/profile-service/internal/core/service"
)

// Dependencies carries everything the router needs. Repositories are port
// interfaces so tests can inject in-memory implementations.
type Dependencies struct {
	Users         ports.UserRepository
	Notifications ports.NotificationRepository
	// UpgradeRoles is the allow-list of roles permitted to upgrade users.
	UpgradeRoles []string
	// DB backs the readiness probe; may be nil to skip the route.
	DB     handler.Pinger
	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Dependencies ---
	profileService := service.NewProfileService(deps.Users, deps.Logger)
	upgradeService := service.NewUpgradeService(deps.Users, deps.Notifications, deps.Logger)
	userHandler := handler.NewUserHandler(profileService, upgradeService)

	// --- API routes (bearer auth resolved once per request) ---
	apiGroup := e.Group("/api", middleware.Auth(deps.Users))
	apiGroup.PUT("/users/profile", userHandler.UpdateProfile)
	apiGroup.GET("/users/:user_id", userHandler.Get)
	apiGroup.POST("/users/:user_id/upgrade", userHandler.Upgrade, middleware.RBAC(deps.UpgradeRoles...))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness) // liveness  – is the process alive?
	if deps.DB != nil {
		readinessHandler := handler.NewReadinessHandler(deps.DB)
		e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the store up?
	}
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
