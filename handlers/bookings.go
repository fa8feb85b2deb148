package handlers

import (
	"net/http"

	"restaurant-ops-api/config"
	"restaurant-ops-api/models"
	"restaurant-ops-api/orderstatus"

	"github.com/gin-gonic/gin"
)

type CreateBookingRequest struct {
	CustomerName   string `json:"customer_name" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Date           string `json:"date" binding:"required,datetime=2006-01-02"`
	Time           string `json:"time" binding:"required,datetime=15:04"`
	Guests         int    `json:"guests" binding:"required,min=1"`
	SpecialRequest string `json:"special_request"`
}

// CreateBooking places a table booking (public)
func CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking := models.Booking{
		CustomerName:   req.CustomerName,
		Phone:          req.Phone,
		Email:          req.Email,
		Date:           req.Date,
		Time:           req.Time,
		Guests:         req.Guests,
		Status:         models.BookingPending,
		SpecialRequest: req.SpecialRequest,
	}
	if err := config.DB.Create(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Booking received", "booking": booking})
}

// ListBookings returns bookings, optionally filtered by status or date — admin only
func ListBookings(c *gin.Context) {
	var bookings []models.Booking
	query := config.DB.Order("date asc, time asc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if date := c.Query("date"); date != "" {
		query = query.Where("date = ?", date)
	}
	query.Find(&bookings)
	c.JSON(http.StatusOK, gin.H{"count": len(bookings), "bookings": bookings})
}

type UpdateBookingStatusRequest struct {
	Status models.BookingStatus `json:"status" binding:"required"`
}

// UpdateBookingStatus confirms, rejects or cancels a booking — admin only
func UpdateBookingStatus(c *gin.Context) {
	var booking models.Booking
	if err := config.DB.First(&booking, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !orderstatus.ValidBookingStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Unknown booking status",
			"allowed": orderstatus.AllBookingStatuses(),
		})
		return
	}

	config.DB.Model(&booking).Update("status", req.Status)
	c.JSON(http.StatusOK, gin.H{"message": "Booking status updated", "booking": booking})
}

// DeleteBooking removes a booking — admin only
func DeleteBooking(c *gin.Context) {
	res := config.DB.Delete(&models.Booking{}, c.Param("id"))
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}
