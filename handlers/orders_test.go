package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant-ops-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupOrderRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)

	r := gin.New()
	r.POST("/api/orders", CreateOrder)
	r.GET("/api/orders/:id", GetOrder)
	r.GET("/api/orders", ListOrders)
	r.PUT("/api/orders/:id/status", UpdateOrderStatus)
	return r, db
}

const validOrderJSON = `{
	"customer_name": "Ada Lovelace",
	"phone": "07700900001",
	"address": "12 Analytical Way",
	"delivery_method": "delivery",
	"payment_method": "card",
	"subtotal": 29.99,
	"delivery_fee": 2.99,
	"total": 32.98,
	"items": [
		{"name": "Margherita", "price": 12.50, "quantity": 1},
		{"name": "Garlic Bread", "price": 5.83, "quantity": 3}
	]
}`

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrderPersistsHeaderAndItems(t *testing.T) {
	r, db := setupOrderRouter(t)

	w := postJSON(r, "/api/orders", validOrderJSON)
	require.Equal(t, http.StatusCreated, w.Code)

	var orders []models.Order
	require.NoError(t, db.Preload("Items").Find(&orders).Error)
	require.Len(t, orders, 1)
	assert.Equal(t, models.OrderPending, orders[0].Status)
	assert.Len(t, orders[0].Items, 2)
}

func TestCreateOrderRejectsMismatchedTotal(t *testing.T) {
	r, db := setupOrderRouter(t)

	body := `{
		"customer_name": "Ada", "phone": "1", "address": "x",
		"delivery_method": "delivery", "payment_method": "card",
		"subtotal": 29.99, "delivery_fee": 2.99, "total": 99.00,
		"items": [{"name": "Margherita", "price": 12.50, "quantity": 1}]
	}`
	w := postJSON(r, "/api/orders", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	r, _ := setupOrderRouter(t)

	body := `{
		"customer_name": "Ada", "phone": "1", "address": "x",
		"delivery_method": "delivery", "payment_method": "card",
		"subtotal": 10, "delivery_fee": 0, "total": 10,
		"items": []
	}`
	w := postJSON(r, "/api/orders", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrderRequiresAddressForDelivery(t *testing.T) {
	r, _ := setupOrderRouter(t)

	body := `{
		"customer_name": "Ada", "phone": "1",
		"delivery_method": "delivery", "payment_method": "card",
		"subtotal": 10, "delivery_fee": 0, "total": 10,
		"items": [{"name": "Margherita", "price": 10, "quantity": 1}]
	}`
	w := postJSON(r, "/api/orders", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Pickup orders don't need an address.
	pickup := `{
		"customer_name": "Ada", "phone": "1",
		"delivery_method": "pickup", "payment_method": "cash",
		"subtotal": 10, "delivery_fee": 0, "total": 10,
		"items": [{"name": "Margherita", "price": 10, "quantity": 1}]
	}`
	w = postJSON(r, "/api/orders", pickup)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestGetOrderNotFound(t *testing.T) {
	r, _ := setupOrderRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/orders/999", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateOrderStatusValidatesStatusSet(t *testing.T) {
	r, _ := setupOrderRouter(t)

	w := postJSON(r, "/api/orders", validOrderJSON)
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Order models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// Unknown status is rejected.
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/orders/1/status", bytes.NewBufferString(`{"status":"teleported"}`))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Any status in the allowed set is accepted; transitions are ops policy.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/api/orders/1/status", bytes.NewBufferString(`{"status":"out-for-delivery"}`))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
