package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus tracks the lifecycle of a payment attempt
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Payment is the local record of a gateway payment intent. Exactly one
// Payment exists per Order (unique index on order_id); repeated intent
// requests overwrite the row rather than accumulating. Only the
// reconciliation service creates or mutates Payments.
type Payment struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	OrderID          uint            `json:"order_id" gorm:"uniqueIndex;not null"`
	GatewayReference string          `json:"gateway_reference" gorm:"size:255;uniqueIndex"`
	Amount           decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	Status           PaymentStatus   `json:"status" gorm:"size:20;not null;default:'pending'"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
