package http

import (
	"github.com/gin-gonic/gin"
	"github.com/luminaweb/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", handler.ListProducts)
			products.GET("/:id", handler.GetProduct)
		}

		cart := v1.Group("/cart")
		{
			cart.GET("", handler.GetCart)
			cart.DELETE("", handler.ClearCart)
			cart.POST("/items", handler.AddCartItem)
			cart.PUT("/items/:id", handler.UpdateCartItem)
			cart.DELETE("/items/:id", handler.RemoveCartItem)
		}

		v1.GET("/currency", handler.GetCurrency)
		v1.PUT("/currency", handler.SetCurrency)

		v1.POST("/catalog/refresh", handler.RefreshCatalog)
	}

	return router
}
