package main

import (
	"net/http"
	"os"

	"restaurant-ops-api/config"
	"restaurant-ops-api/handlers"
	"restaurant-ops-api/payments"
	"restaurant-ops-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	// Initialize database
	config.InitDB()

	// Payment gateway + reconciliation service
	stripeCfg := config.LoadStripeConfig()
	if stripeCfg.SecretKey == "" {
		log.Warn("STRIPE_SECRET_KEY not set; intent creation will fail until configured")
	}
	gateway := payments.NewStripeGateway(stripeCfg)
	paymentSvc := payments.NewService(config.DB, gateway, stripeCfg.Currency, log)
	paymentHandler := handlers.NewPaymentHandler(paymentSvc)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Restaurant Operations API",
			"version": "1.0.0",
		})
	})

	// Register all routes
	routes.SetupRoutes(r, paymentHandler)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Infof("🚀 Server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
