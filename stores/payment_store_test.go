package stores

import (
	"testing"

	"restaurant-ops-api/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentStoreUpsertIsIdempotentPerOrder(t *testing.T) {
	db := newTestDB(t)
	store := NewPaymentStore(db)

	amount := decimal.RequireFromString("32.98")
	first, err := store.UpsertPending(42, "pi_abc", amount)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPending, first.Status)
	assert.Equal(t, "pi_abc", first.GatewayReference)
	assert.True(t, first.Amount.Equal(amount))

	// Second intent request for the same order overwrites, never accumulates.
	newAmount := decimal.RequireFromString("35.00")
	second, err := store.UpsertPending(42, "pi_def", newAmount)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "pi_def", second.GatewayReference)
	assert.True(t, second.Amount.Equal(newAmount))

	var count int64
	db.Model(&models.Payment{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestPaymentStoreUpsertResetsStatusToPending(t *testing.T) {
	store := NewPaymentStore(newTestDB(t))

	p, err := store.UpsertPending(7, "pi_one", decimal.RequireFromString("10.00"))
	require.NoError(t, err)
	applied, err := store.MarkFailed(p.ID)
	require.NoError(t, err)
	require.True(t, applied)

	// A fresh intent request after a failure reopens the payment.
	p, err = store.UpsertPending(7, "pi_two", decimal.RequireFromString("10.00"))
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPending, p.Status)
	assert.Equal(t, "pi_two", p.GatewayReference)
}

func TestPaymentStoreFindByGatewayReference(t *testing.T) {
	store := NewPaymentStore(newTestDB(t))

	_, err := store.UpsertPending(1, "pi_ref", decimal.RequireFromString("5.00"))
	require.NoError(t, err)

	found, err := store.FindByGatewayReference("pi_ref")
	require.NoError(t, err)
	assert.Equal(t, uint(1), found.OrderID)

	_, err = store.FindByGatewayReference("pi_missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPaymentStoreMarkCompletedAppliesExactlyOnce(t *testing.T) {
	store := NewPaymentStore(newTestDB(t))

	p, err := store.UpsertPending(1, "pi_cas", decimal.RequireFromString("5.00"))
	require.NoError(t, err)

	applied, err := store.MarkCompleted(p.ID)
	require.NoError(t, err)
	assert.True(t, applied)

	// Replay: the CAS must not win twice.
	applied, err = store.MarkCompleted(p.ID)
	require.NoError(t, err)
	assert.False(t, applied)

	// A failure event after completion is also a no-op.
	applied, err = store.MarkFailed(p.ID)
	require.NoError(t, err)
	assert.False(t, applied)

	got, err := store.FindByOrder(1)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCompleted, got.Status)
}
