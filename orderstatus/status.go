// Package orderstatus defines the allowed status vocabularies for orders and
// bookings. Status-transition legality is deliberately not modelled here:
// which transitions ops staff may perform is policy for the calling handler,
// the stores accept any status in the allowed set.
package orderstatus

import "restaurant-ops-api/models"

var orderStatuses = []models.OrderStatus{
	models.OrderPending,
	models.OrderConfirmed,
	models.OrderPreparing,
	models.OrderOutForDelivery,
	models.OrderDelivered,
	models.OrderCancelled,
	models.OrderReadyForPickup,
	models.OrderPickedUp,
}

var orderStatusSet = func() map[models.OrderStatus]bool {
	m := make(map[models.OrderStatus]bool, len(orderStatuses))
	for _, s := range orderStatuses {
		m[s] = true
	}
	return m
}()

var bookingStatuses = []models.BookingStatus{
	models.BookingPending,
	models.BookingConfirmed,
	models.BookingRejected,
	models.BookingCancelled,
}

var bookingStatusSet = func() map[models.BookingStatus]bool {
	m := make(map[models.BookingStatus]bool, len(bookingStatuses))
	for _, s := range bookingStatuses {
		m[s] = true
	}
	return m
}()

// ValidOrderStatus reports whether s is in the allowed order status set
func ValidOrderStatus(s models.OrderStatus) bool {
	return orderStatusSet[s]
}

// ValidBookingStatus reports whether s is in the allowed booking status set
func ValidBookingStatus(s models.BookingStatus) bool {
	return bookingStatusSet[s]
}

// AllOrderStatuses returns the full order status vocabulary for documentation
func AllOrderStatuses() []models.OrderStatus {
	return orderStatuses
}

// AllBookingStatuses returns the full booking status vocabulary
func AllBookingStatuses() []models.BookingStatus {
	return bookingStatuses
}
