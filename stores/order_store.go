package stores

import (
	"errors"

	"restaurant-ops-api/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("record not found")

// OrderStore persists the Order aggregate (header plus line items).
type OrderStore struct {
	db *gorm.DB
}

func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{db: db}
}

// WithTx rebinds the store to a transaction handle so callers can compose
// order writes with other writes atomically.
func (s *OrderStore) WithTx(tx *gorm.DB) *OrderStore {
	return &OrderStore{db: tx}
}

// Create inserts the order header and all line items as one unit. The whole
// insert runs in a single transaction: if any item fails, nothing persists.
// The header and the items are inserted separately — GORM's association save
// upserts an item whose primary key already exists, which would silently
// re-parent another order's line instead of failing the insert.
func (s *OrderStore) Create(order *models.Order) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Create(order).Error; err != nil {
			return err
		}
		if len(order.Items) == 0 {
			return nil
		}
		for i := range order.Items {
			order.Items[i].OrderID = order.ID
		}
		return tx.Create(&order.Items).Error
	})
}

// Get fetches an order with its line items preloaded.
func (s *OrderStore) Get(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// UpdateStatus sets the order status. Any status in the allowed set is
// accepted; transition legality is the caller's policy.
func (s *OrderStore) UpdateStatus(id uint, status models.OrderStatus) (*models.Order, error) {
	res := s.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.Get(id)
}

// List returns orders newest first, optionally filtered by status.
func (s *OrderStore) List(status string) ([]models.Order, error) {
	var orders []models.Order
	query := s.db.Preload("Items").Order("created_at desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
