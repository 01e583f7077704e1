package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/staffhub/employee-system/internal/api/handler"
	"github.com/staffhub/employee-system/internal/api/middleware"
	"github.com/staffhub/employee-system/internal/core/domain"
	"github.com/staffhub/employee-system/internal/core/service"
	"github.com/staffhub/employee-system/internal/infrastructure/config"
	mongostore "github.com/staffhub/employee-system/internal/infrastructure/db/mongo"
	redisstore "github.com/staffhub/employee-system/internal/infrastructure/db/redis"
	"github.com/staffhub/employee-system/internal/infrastructure/http/handlers"
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
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("employee_system"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	sessions := redisstore.NewSessionRegistry(rdb)
	issuer := service.NewJWTIssuer(cfg.JWT.Secret, cfg.JWT.TokenTTL)
	authService := service.NewAuthService(userRepo, sessions, issuer)
	userService := service.NewUserService(userRepo)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	authGate := middleware.Auth(sessions, issuer)
	managerOnly := middleware.RBAC(domain.RoleManager)

	// --- Public routes ---
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)

	// --- Authenticated routes ---
	e.POST("/logout", authHandler.Logout, authGate)
	e.GET("/me", userHandler.Me, authGate)
	e.PUT("/users", userHandler.Update, authGate)
	e.PUT("/users/:id", userHandler.Update, authGate)

	// --- Manager-only routes ---
	e.GET("/employees", userHandler.ListEmployees, authGate, managerOnly)
	e.DELETE("/employees/:id", userHandler.DeleteEmployee, authGate, managerOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
