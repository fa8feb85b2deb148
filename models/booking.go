package models

import "time"

// BookingStatus represents the states of a table booking
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingRejected  BookingStatus = "rejected"
	BookingCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID             uint          `json:"id" gorm:"primaryKey"`
	CustomerName   string        `json:"customer_name" gorm:"size:255;not null"`
	Phone          string        `json:"phone" gorm:"size:20;not null"`
	Email          string        `json:"email" gorm:"not null"`
	Date           string        `json:"date" gorm:"size:10;not null"` // YYYY-MM-DD
	Time           string        `json:"time" gorm:"size:5;not null"`  // HH:MM
	Guests         int           `json:"guests" gorm:"not null"`
	Status         BookingStatus `json:"status" gorm:"size:20;not null;default:'pending'"`
	SpecialRequest string        `json:"special_request"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
