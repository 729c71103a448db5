package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bilemo/catalog-api/internal/api/handler"
	"github.com/bilemo/catalog-api/internal/api/middleware"
	"github.com/bilemo/catalog-api/internal/core/service"
	mongorepo "github.com/bilemo/catalog-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/bilemo/catalog-api/internal/infrastructure/db/redis"
	"github.com/bilemo/catalog-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, tokenTTL time.Duration) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	clientRepo := mongorepo.NewClientRepository(db)
	productRepo := mongorepo.NewProductRepository(db)
	userRepo := mongorepo.NewUserRepository(db)
	throttle := redisinfra.NewLoginThrottle(rdb)

	authService := service.NewAuthService(clientRepo, throttle, jwtSecret, tokenTTL, log)
	productService := service.NewProductService(productRepo, log)
	userService := service.NewUserService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	userHandler := handler.NewUserHandler(userService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	// --- Operational endpoints (no auth required) ---
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- API routes ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/auth/login", authHandler.Login)

	secured := apiGroup.Group("", middleware.Auth(jwtSecret), middleware.RequireActive())
	secured.GET("/products", productHandler.List)
	secured.GET("/products/:id", productHandler.Show)
	secured.GET("/users", userHandler.List)
	secured.GET("/users/:id", userHandler.Show)
	secured.POST("/users", userHandler.Create)
	secured.DELETE("/users/:id", userHandler.Delete)

	return e
}
