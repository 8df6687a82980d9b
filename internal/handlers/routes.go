package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"restaurant-finder-api/internal/config"
	"restaurant-finder-api/internal/middleware"
	"restaurant-finder-api/internal/services"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	RestaurantService services.RestaurantService
	DistrictService   services.DistrictService
	AuthService       *middleware.AuthService
	Listing           config.ListingConfig
	RateLimit         config.RateLimitConfig
	Mode              string
	EnableSwagger     bool
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, cfg *RouterConfig) {
	authEnabled := cfg.AuthService.Enabled()

	restaurantHandler := NewRestaurantHandler(cfg.RestaurantService, cfg.Listing, authEnabled)
	districtHandler := NewDistrictHandler(cfg.DistrictService, authEnabled)
	healthHandler := NewHealthHandler(authEnabled, cfg.Mode)

	if cfg.EnableSwagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler.Health)

		// Preflight is answered by the CORS middleware
		api.OPTIONS("/restaurants", func(c *gin.Context) {})
		api.OPTIONS("/districts", func(c *gin.Context) {})

		data := api.Group("")
		data.Use(middleware.Authentication(cfg.AuthService))
		{
			data.GET("/restaurants", restaurantHandler.ListRestaurants)
			data.GET("/districts", districtHandler.ListDistricts)
		}
	}
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine, cfg *RouterConfig) {
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.AuthService.Enabled()))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	router.Use(middleware.StructuredLogger())
	router.Use(middleware.PerformanceMonitor(5 * time.Second))
	router.Use(middleware.ErrorHandler())
}

// NewRouter builds a gin engine with middleware and routes
func NewRouter(cfg *RouterConfig) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoMethod(middleware.MethodNotAllowed())
	router.Use(gin.Recovery())
	SetupMiddleware(router, cfg)
	SetupRoutes(router, cfg)
	return router
}
