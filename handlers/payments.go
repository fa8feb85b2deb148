package handlers

import (
	"errors"
	"net/http"

	"restaurant-ops-api/payments"

	"github.com/gin-gonic/gin"
)

// signatureHeader is the header the gateway signs webhook payloads with.
const signatureHeader = "Stripe-Signature"

type CreateIntentRequest struct {
	OrderID uint `json:"order_id" binding:"required"`
}

// PaymentHandler exposes the create-intent and webhook endpoints over the
// reconciliation service.
type PaymentHandler struct {
	svc *payments.Service
}

func NewPaymentHandler(svc *payments.Service) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// CreateIntent issues a gateway payment intent for an order (authenticated)
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	clientSecret, err := h.svc.RequestIntent(c.Request.Context(), req.OrderID)
	switch {
	case errors.Is(err, payments.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	case errors.Is(err, payments.ErrGatewayUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment provider unavailable, please retry"})
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not create payment intent"})
	default:
		c.JSON(http.StatusCreated, gin.H{"clientSecret": clientSecret})
	}
}

// Webhook receives gateway event callbacks. Unauthenticated but signature
// verified; once verification passes the response is always 200 so the
// processor stops retrying, whatever the event matched locally.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read payload"})
		return
	}

	outcome, err := h.svc.HandleWebhook(payload, c.GetHeader(signatureHeader))
	if err != nil {
		// Signature failure. No verification detail leaves the process.
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true, "outcome": string(outcome)})
}
