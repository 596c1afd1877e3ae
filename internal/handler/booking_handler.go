package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/south-ventures/tikang-front-owner/internal/middleware"
	"github.com/south-ventures/tikang-front-owner/internal/owner"
	"github.com/south-ventures/tikang-front-owner/internal/views"
)

// BookingAPI defines the backend booking operations used by BookingHandler.
type BookingAPI interface {
	BookingsByLessor(ctx context.Context, lessorID string) ([]owner.Booking, error)
	ChangeBookingStatus(ctx context.Context, bookingID, newStatus string) error
	CancelBooking(ctx context.Context, bookingID, reason string) error
	RescheduleBooking(ctx context.Context, bookingID, newCheckIn, newCheckOut string) error
}

type BookingHandler struct {
	api BookingAPI
	now func() time.Time
}

func NewBookingHandler(api BookingAPI) *BookingHandler {
	return &BookingHandler{api: api, now: time.Now}
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type RescheduleRequest struct {
	NewCheckIn  string `json:"new_check_in" validate:"required"`
	NewCheckOut string `json:"new_check_out" validate:"required"`
}

const dateLayout = "2006-01-02"

// List returns the owner's bookings bucketed into upcoming, ongoing,
// completed and cancelled. ?q= filters by guest name or listing title
// before bucketing. State is always reloaded from the backend; this layer
// holds no booking cache of its own.
func (h *BookingHandler) List(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	bookings, err := h.api.BookingsByLessor(c.Request.Context(), user.UserID)
	if err != nil {
		respondMutationError(c, err, "Failed to load bookings")
		return
	}
	buckets := views.BucketBookings(bookings, h.now(), c.Query("q"))
	c.JSON(http.StatusOK, buckets)
}

// Calendar returns the bookings checking in on one calendar day, for the
// booking calendar view. ?date= is a YYYY-MM-DD day and is required.
func (h *BookingHandler) Calendar(c *gin.Context) {
	day, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid date")
		return
	}

	user, _ := middleware.CurrentUser(c)
	bookings, err := h.api.BookingsByLessor(c.Request.Context(), user.UserID)
	if err != nil {
		respondMutationError(c, err, "Failed to load bookings")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":     c.Query("date"),
		"bookings": views.BookingsOnDate(bookings, day),
	})
}

// Accept confirms a pending booking.
func (h *BookingHandler) Accept(c *gin.Context) {
	bookingID := c.Param("bookingId")
	if err := h.api.ChangeBookingStatus(c.Request.Context(), bookingID, owner.BookingConfirmed); err != nil {
		respondMutationError(c, err, "Failed to accept booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking accepted"})
}

// Cancel cancels a confirmed booking, or declines a pending one. A reason
// is required either way.
func (h *BookingHandler) Cancel(c *gin.Context) {
	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	if err := h.api.CancelBooking(c.Request.Context(), c.Param("bookingId"), req.Reason); err != nil {
		respondMutationError(c, err, "Failed to cancel booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}

// Reschedule moves the stay window. The date-range check runs before the
// network call: check-in must not be in the past, check-out must follow it.
func (h *BookingHandler) Reschedule(c *gin.Context) {
	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	checkIn, err := time.Parse(dateLayout, req.NewCheckIn)
	if err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid check-in date")
		return
	}
	checkOut, err := time.Parse(dateLayout, req.NewCheckOut)
	if err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid check-out date")
		return
	}
	today := h.now().Truncate(24 * time.Hour)
	if checkIn.Before(today) || !checkOut.After(checkIn) {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid date range")
		return
	}

	if err := h.api.RescheduleBooking(c.Request.Context(), c.Param("bookingId"), req.NewCheckIn, req.NewCheckOut); err != nil {
		respondMutationError(c, err, "Failed to reschedule booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking rescheduled"})
}
