package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/ecocollect/collection-system/docs"
	"github.com/ecocollect/collection-system/internal/api/handler"
	"github.com/ecocollect/collection-system/internal/api/middleware"
	"github.com/ecocollect/collection-system/internal/core/domain"
	"github.com/ecocollect/collection-system/internal/core/service"
	"github.com/ecocollect/collection-system/internal/infrastructure/config"
	mongodb "github.com/ecocollect/collection-system/internal/infrastructure/db/mongo"
	redisdb "github.com/ecocollect/collection-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
//
// Authorization policy, enforced uniformly at the API boundary:
//   - create/update/delete a location → cleaner only
//   - list locations                  → cleaner or driver
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("collection"))

	// --- Dependencies ---
	authRepo := mongodb.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	authHandler := handler.NewAuthHandler(authService)

	locationRepo := mongodb.NewLocationRepository(db)
	locationCache := redisdb.NewLocationCache(rdb, cfg.Redis.CacheTTL)
	locationService := service.NewLocationService(locationRepo, locationCache, log)
	locationHandler := handler.NewLocationHandler(locationService)

	authMiddleware := middleware.Auth(cfg.JWTSecret)
	cleanerOnly := middleware.RBAC(domain.RoleCleaner)
	anyRole := middleware.RBAC(domain.RoleCleaner, domain.RoleDriver)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)

	// --- Location routes ---
	locations := e.Group("/v1/locations", authMiddleware)
	locations.POST("", locationHandler.Create, cleanerOnly)
	locations.GET("", locationHandler.List, anyRole)
	locations.PUT("", locationHandler.Update, cleanerOnly)
	locations.DELETE("", locationHandler.Delete, cleanerOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
