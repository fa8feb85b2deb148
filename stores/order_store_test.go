package stores

import (
	"testing"

	"restaurant-ops-api/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() *models.Order {
	return &models.Order{
		CustomerName:   "Ada Lovelace",
		Phone:          "07700900001",
		Address:        "12 Analytical Way",
		DeliveryMethod: models.MethodDelivery,
		PaymentMethod:  models.PayCard,
		Subtotal:       decimal.RequireFromString("29.99"),
		DeliveryFee:    decimal.RequireFromString("2.99"),
		Total:          decimal.RequireFromString("32.98"),
		Status:         models.OrderPending,
		Items: []models.OrderItem{
			{Name: "Margherita", Price: decimal.RequireFromString("12.50"), Quantity: 1},
			{Name: "Garlic Bread", Price: decimal.RequireFromString("5.83"), Quantity: 3},
		},
	}
}

func TestOrderStoreCreateAndGet(t *testing.T) {
	store := NewOrderStore(newTestDB(t))

	order := sampleOrder()
	require.NoError(t, store.Create(order))
	require.NotZero(t, order.ID)

	got, err := store.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", got.CustomerName)
	assert.Equal(t, models.OrderPending, got.Status)
	assert.True(t, got.Total.Equal(decimal.RequireFromString("32.98")))
	require.Len(t, got.Items, 2)
	assert.Equal(t, order.ID, got.Items[0].OrderID)
}

func TestOrderStoreCreateIsAtomic(t *testing.T) {
	db := newTestDB(t)
	store := NewOrderStore(db)

	first := sampleOrder()
	require.NoError(t, store.Create(first))

	// Force a line-item insert failure partway through by colliding with an
	// existing item primary key. The header must not survive.
	second := sampleOrder()
	second.Items = []models.OrderItem{
		{Name: "Calzone", Price: decimal.RequireFromString("9.00"), Quantity: 1},
		{ID: first.Items[0].ID, Name: "Dup", Price: decimal.RequireFromString("1.00"), Quantity: 1},
	}
	require.Error(t, store.Create(second))

	var orderCount, itemCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	db.Model(&models.OrderItem{}).Count(&itemCount)
	assert.Equal(t, int64(1), orderCount)
	assert.Equal(t, int64(2), itemCount)

	// The colliding item must still belong to the first order — a failed
	// insert can never re-parent an existing line.
	var item models.OrderItem
	require.NoError(t, db.First(&item, first.Items[0].ID).Error)
	assert.Equal(t, first.ID, item.OrderID)
	assert.Equal(t, "Margherita", item.Name)
}

func TestOrderStoreGetNotFound(t *testing.T) {
	store := NewOrderStore(newTestDB(t))
	_, err := store.Get(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderStoreUpdateStatus(t *testing.T) {
	store := NewOrderStore(newTestDB(t))

	order := sampleOrder()
	require.NoError(t, store.Create(order))

	updated, err := store.UpdateStatus(order.ID, models.OrderConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.OrderConfirmed, updated.Status)

	_, err = store.UpdateStatus(999, models.OrderConfirmed)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderStoreListFiltersByStatus(t *testing.T) {
	store := NewOrderStore(newTestDB(t))

	a := sampleOrder()
	require.NoError(t, store.Create(a))
	b := sampleOrder()
	b.CustomerName = "Grace Hopper"
	require.NoError(t, store.Create(b))
	_, err := store.UpdateStatus(b.ID, models.OrderConfirmed)
	require.NoError(t, err)

	all, err := store.List("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	confirmed, err := store.List(string(models.OrderConfirmed))
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	assert.Equal(t, "Grace Hopper", confirmed[0].CustomerName)
}
