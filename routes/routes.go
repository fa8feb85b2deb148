package routes

import (
	"restaurant-ops-api/handlers"
	"restaurant-ops-api/middleware"
	"restaurant-ops-api/models"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers all API routes. The payment handler is passed in
// because it carries the reconciliation service built at startup.
func SetupRoutes(r *gin.Engine, payment *handlers.PaymentHandler) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/users/register", handlers.Register)
		public.POST("/users/login", handlers.Login)

		// Menu browsing
		public.GET("/menu/items", handlers.ListMenu)
		public.GET("/menu/categories", handlers.ListMenuCategories)

		// Guest checkout and order tracking
		public.POST("/orders", handlers.CreateOrder)
		public.GET("/orders/:id", handlers.GetOrder)

		// Table bookings
		public.POST("/bookings", handlers.CreateBooking)

		// Gateway webhook: unauthenticated, signature-verified
		public.POST("/payments/webhook", payment.Webhook)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/users/profile", handlers.GetProfile)
		auth.POST("/payments/intent", payment.CreateIntent)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		// Menu management
		admin.POST("/menu/items", handlers.CreateMenuItem)
		admin.PUT("/menu/items/:id", handlers.UpdateMenuItem)
		admin.DELETE("/menu/items/:id", handlers.DeleteMenuItem)
		admin.POST("/menu/categories", handlers.CreateMenuCategory)
		admin.DELETE("/menu/categories/:id", handlers.DeleteMenuCategory)

		// Stock management
		admin.GET("/stock/categories", handlers.ListStockCategories)
		admin.POST("/stock/categories", handlers.CreateStockCategory)
		admin.DELETE("/stock/categories/:id", handlers.DeleteStockCategory)
		admin.GET("/stock/items", handlers.ListStockItems)
		admin.POST("/stock/items", handlers.CreateStockItem)
		admin.PUT("/stock/items/:id", handlers.UpdateStockItem)
		admin.DELETE("/stock/items/:id", handlers.DeleteStockItem)

		// Booking management
		admin.GET("/bookings", handlers.ListBookings)
		admin.PUT("/bookings/:id/status", handlers.UpdateBookingStatus)
		admin.DELETE("/bookings/:id", handlers.DeleteBooking)

		// Order ops
		admin.GET("/orders", handlers.ListOrders)
		admin.PUT("/orders/:id/status", handlers.UpdateOrderStatus)
	}
}
