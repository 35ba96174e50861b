package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-mint-engine/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Issuance endpoint (open, payment is the gate)
		v1.POST("/mint", handler.Mint)

		// Token endpoints (public read access)
		v1.GET("/tokens/:number", handler.GetToken)
		v1.GET("/tokens", handler.ListTokens)

		// Supply endpoint (public read access)
		v1.GET("/supply", handler.GetSupply)

		// Receipt endpoint (public read access)
		v1.GET("/receipts/:id", handler.GetReceipt)

		// Administrative endpoints (requires authentication)
		admin := v1.Group("/admin", middleware.Auth(authCfg))
		{
			admin.POST("/pause", handler.Pause)
			admin.POST("/resume", handler.Resume)
			admin.PUT("/price", handler.SetPrice)
			admin.PUT("/alt-payment", handler.SetAltPayment)
			admin.PUT("/treasury", handler.SetTreasury)
			admin.PUT("/base-uri", handler.SetBaseURI)
		}
	}
}
