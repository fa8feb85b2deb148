package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents all possible states of a restaurant order
type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderConfirmed      OrderStatus = "confirmed"
	OrderPreparing      OrderStatus = "preparing"
	OrderOutForDelivery OrderStatus = "out-for-delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
	OrderReadyForPickup OrderStatus = "ready-for-pickup"
	OrderPickedUp       OrderStatus = "picked-up"
)

// DeliveryMethod is how the customer receives the order
type DeliveryMethod string

const (
	MethodDelivery DeliveryMethod = "delivery"
	MethodPickup   DeliveryMethod = "pickup"
)

// PaymentMethod is how the customer intends to pay
type PaymentMethod string

const (
	PayCash PaymentMethod = "cash"
	PayCard PaymentMethod = "card"
)

type Order struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	CustomerName     string          `json:"customer_name" gorm:"size:255;not null"`
	Phone            string          `json:"phone" gorm:"size:20;not null"`
	Address          string          `json:"address"`
	DeliveryMethod   DeliveryMethod  `json:"delivery_method" gorm:"size:20;not null"`
	PaymentMethod    PaymentMethod   `json:"payment_method" gorm:"size:20;not null"`
	Subtotal         decimal.Decimal `json:"subtotal" gorm:"type:decimal(10,2);not null"`
	DeliveryFee      decimal.Decimal `json:"delivery_fee" gorm:"type:decimal(10,2);default:0"`
	Total            decimal.Decimal `json:"total" gorm:"type:decimal(10,2);not null"`
	Status           OrderStatus     `json:"status" gorm:"size:20;not null;default:'pending'"`
	Items            []OrderItem     `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time       `json:"created_at"`
	EstimatedArrival *time.Time      `json:"estimated_arrival"`
}

// OrderItem is a line item owned by an Order. Immutable after creation.
type OrderItem struct {
	ID       uint            `json:"id" gorm:"primaryKey"`
	OrderID  uint            `json:"order_id" gorm:"not null;index"`
	Name     string          `json:"name" gorm:"size:255;not null"`
	Price    decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Quantity int             `json:"quantity" gorm:"not null"`
	Image    string          `json:"image" gorm:"size:500"`
}
