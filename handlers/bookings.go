package handlers

import (
	"net/http"
	"time"

	bookingRepo "fieldbook/database/repository/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the read-only booking projection.
type BookingHandler struct {
	Bookings bookingRepo.BookingRepository
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(bookings bookingRepo.BookingRepository) *BookingHandler {
	return &BookingHandler{Bookings: bookings}
}

// ListWorkerBookingsHandler returns the worker's possibly-blocking bookings
// over an inclusive date range.
func (h *BookingHandler) ListWorkerBookingsHandler(c *gin.Context) {
	workerID := c.Param("workerID")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	from, err := time.ParseInLocation(dateLayout, fromStr, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date, expected YYYY-MM-DD"})
		return
	}
	to, err := time.ParseInLocation(dateLayout, toStr, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date, expected YYYY-MM-DD"})
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to date precedes from date"})
		return
	}

	bookings, err := h.Bookings.ListOverlapping(c.Request.Context(), workerID, from, to.AddDate(0, 0, 1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
