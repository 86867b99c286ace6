package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/crediya/user-service/internal/api/handler"
	"github.com/crediya/user-service/internal/api/middleware"
	"github.com/crediya/user-service/internal/core/service"
	mongodb "github.com/crediya/user-service/internal/infrastructure/db/mongo"
	redisdb "github.com/crediya/user-service/internal/infrastructure/db/redis"
	"github.com/crediya/user-service/internal/pkg/config"
	"github.com/crediya/user-service/internal/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("users"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := redisdb.NewCachedRoleRepository(mongodb.NewRoleRepository(db), rdb)

	userService := service.NewUserService(userRepo, roleRepo, log)
	roleService := service.NewRoleService(roleRepo, log)
	authService := service.NewAuthService(userService, log)

	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL)

	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleService)
	authHandler := handler.NewAuthHandler(authService, tokens)

	authMW := middleware.Auth(tokens)
	adminOnly := middleware.RequireAdmin()
	selfOrAdmin := middleware.RequireSelfOrAdmin("id")

	// --- Auth routes (public) ---
	e.POST("/api/v1/auth/login", authHandler.Login)
	e.POST("/api/v1/auth/validate", authHandler.Validate)

	// --- User routes ---
	users := e.Group("/api/v1/users", authMW)
	users.POST("", userHandler.Register, adminOnly)
	users.GET("", userHandler.List, adminOnly)
	users.GET("/:id", userHandler.Get, selfOrAdmin)
	users.PUT("/:id", userHandler.Update, adminOnly)
	users.DELETE("/:id", userHandler.Delete, adminOnly)

	// --- Role routes (admin only) ---
	roles := e.Group("/api/v1/roles", authMW, adminOnly)
	roles.POST("", roleHandler.Create)
	roles.GET("", roleHandler.List)
	roles.GET("/:id", roleHandler.Get)
	roles.PUT("/:id", roleHandler.Update)
	roles.DELETE("/:id", roleHandler.Delete)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	return e
}
