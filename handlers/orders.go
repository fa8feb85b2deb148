package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"restaurant-ops-api/config"
	"restaurant-ops-api/models"
	"restaurant-ops-api/orderstatus"
	"restaurant-ops-api/stores"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type OrderItemInput struct {
	Name     string          `json:"name" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	Quantity int             `json:"quantity" binding:"required,min=1"`
	Image    string          `json:"image"`
}

// CreateOrderRequest is the composite order input: header fields plus the
// items array, validated as a whole before any storage write.
type CreateOrderRequest struct {
	CustomerName   string                `json:"customer_name" binding:"required"`
	Phone          string                `json:"phone" binding:"required"`
	Address        string                `json:"address"`
	DeliveryMethod models.DeliveryMethod `json:"delivery_method" binding:"required,oneof=delivery pickup"`
	PaymentMethod  models.PaymentMethod  `json:"payment_method" binding:"required,oneof=cash card"`
	Subtotal       decimal.Decimal       `json:"subtotal" binding:"required"`
	DeliveryFee    decimal.Decimal       `json:"delivery_fee"`
	Total          decimal.Decimal       `json:"total" binding:"required"`
	Items          []OrderItemInput      `json:"items" binding:"required,min=1,dive"`
}

// CreateOrder places a new order (guest checkout — no account needed).
// Header and all line items are inserted atomically.
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.DeliveryMethod == models.MethodDelivery && req.Address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Address is required for delivery orders"})
		return
	}
	if !req.Subtotal.Add(req.DeliveryFee).Equal(req.Total) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Total must equal subtotal plus delivery fee"})
		return
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, in := range req.Items {
		items = append(items, models.OrderItem{
			Name:     in.Name,
			Price:    in.Price,
			Quantity: in.Quantity,
			Image:    in.Image,
		})
	}

	order := models.Order{
		CustomerName:   req.CustomerName,
		Phone:          req.Phone,
		Address:        req.Address,
		DeliveryMethod: req.DeliveryMethod,
		PaymentMethod:  req.PaymentMethod,
		Subtotal:       req.Subtotal,
		DeliveryFee:    req.DeliveryFee,
		Total:          req.Total,
		Status:         models.OrderPending,
		Items:          items,
	}

	if err := stores.NewOrderStore(config.DB).Create(&order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
}

// GetOrder returns a single order with items — public order tracking
func GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, err := stores.NewOrderStore(config.DB).Get(uint(id))
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}

// ListOrders returns all orders, newest first — admin only
func ListOrders(c *gin.Context) {
	orders, err := stores.NewOrderStore(config.DB).List(c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}

	// Dashboard summary: counts per status
	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{"count": len(orders), "order_summary": summary, "orders": orders})
}

type UpdateOrderStatusRequest struct {
	Status           models.OrderStatus `json:"status" binding:"required"`
	EstimatedArrival *time.Time         `json:"estimated_arrival"`
}

// UpdateOrderStatus sets an order's status — admin ops action. Any status in
// the allowed set is accepted; ops staff own transition policy.
func UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !orderstatus.ValidOrderStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    "Unknown order status",
			"allowed":  orderstatus.AllOrderStatuses(),
			"received": req.Status,
		})
		return
	}

	store := stores.NewOrderStore(config.DB)
	order, err := store.UpdateStatus(uint(id), req.Status)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	if req.EstimatedArrival != nil {
		config.DB.Model(&models.Order{}).Where("id = ?", id).Update("estimated_arrival", req.EstimatedArrival)
		order.EstimatedArrival = req.EstimatedArrival
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "order": order})
}
