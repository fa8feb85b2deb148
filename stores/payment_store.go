package stores

import (
	"errors"

	"restaurant-ops-api/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PaymentStore persists Payment records keyed by order. One row per order,
// enforced by the unique index on order_id plus upsert semantics.
type PaymentStore struct {
	db *gorm.DB
}

func NewPaymentStore(db *gorm.DB) *PaymentStore {
	return &PaymentStore{db: db}
}

// WithTx rebinds the store to a transaction handle.
func (s *PaymentStore) WithTx(tx *gorm.DB) *PaymentStore {
	return &PaymentStore{db: tx}
}

// UpsertPending creates the Payment row for an order, or overwrites the
// existing row's gateway reference, amount and status. Last write wins, so
// repeated intent requests for the same order stay idempotent at this layer.
func (s *PaymentStore) UpsertPending(orderID uint, gatewayRef string, amount decimal.Decimal) (*models.Payment, error) {
	payment := models.Payment{
		OrderID:          orderID,
		GatewayReference: gatewayRef,
		Amount:           amount,
		Status:           models.PaymentPending,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "order_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"gateway_reference", "amount", "status", "updated_at"}),
	}).Create(&payment).Error
	if err != nil {
		return nil, err
	}
	return s.FindByOrder(orderID)
}

// FindByGatewayReference looks up the Payment matching a gateway intent id.
func (s *PaymentStore) FindByGatewayReference(ref string) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.Where("gateway_reference = ?", ref).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// FindByOrder looks up the Payment for an order.
func (s *PaymentStore) FindByOrder(orderID uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.Where("order_id = ?", orderID).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// MarkCompleted transitions a Payment pending → completed with a
// compare-and-swap on status. Returns applied=false when the row was not in
// pending, which makes duplicate webhook deliveries a safe no-op.
func (s *PaymentStore) MarkCompleted(id uint) (bool, error) {
	return s.casStatus(id, models.PaymentPending, models.PaymentCompleted)
}

// MarkFailed transitions a Payment pending → failed with the same CAS.
func (s *PaymentStore) MarkFailed(id uint) (bool, error) {
	return s.casStatus(id, models.PaymentPending, models.PaymentFailed)
}

func (s *PaymentStore) casStatus(id uint, from, to models.PaymentStatus) (bool, error) {
	res := s.db.Model(&models.Payment{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
