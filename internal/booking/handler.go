package booking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"courtbook/internal/auth"
	"courtbook/internal/coach"
	"courtbook/internal/court"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB, openHour, closeHour int) *Handler {
	return &Handler{
		service: NewService(NewRepository(db), court.NewRepository(db), coach.NewRepository(db), openHour, closeHour),
	}
}

// CreateBooking godoc
// @Summary      Create booking
// @Description  Confirms a court reservation with optional coach and equipment.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateBookingRequest  true  "Booking request"
// @Success      201      {object}  Booking
// @Failure      400      {object}  gin.H
// @Failure      401      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Failure      409      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrOutsideOpenHours), errors.Is(err, ErrTotalMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrCourtNotFound), errors.Is(err, ErrCoachNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ErrSlotTaken), errors.Is(err, ErrCoachUnavailable), errors.Is(err, ErrEquipmentUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		}
		return
	}

	c.JSON(http.StatusCreated, b)
}

// ListMyBookings godoc
// @Summary      List my bookings
// @Description  Returns bookings of the authenticated user, newest date first.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   BookingWithDetails
// @Failure      500  {object}  gin.H
// @Router       /bookings [get]
func (h *Handler) ListMyBookings(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	bookings, err := h.service.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// CancelBooking godoc
// @Summary      Cancel booking
// @Description  Cancels a booking of the current user. Cancelling twice is a no-op.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      string  true  "Booking ID"
// @Success      200        {object}  CancelBookingResponse
// @Failure      400        {object}  gin.H
// @Failure      403        {object}  gin.H
// @Failure      404        {object}  gin.H
// @Failure      500        {object}  gin.H
// @Router       /bookings/{bookingID}/cancel [post]
func (h *Handler) CancelBooking(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	err = h.service.Cancel(c.Request.Context(), userID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only cancel your own bookings"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
		}
		return
	}

	c.JSON(http.StatusOK, CancelBookingResponse{Message: "Booking cancelled successfully"})
}

// JoinWaitlist godoc
// @Summary      Join waitlist
// @Description  Adds the user to the waiting line for a full slot.
// @Tags         waitlist
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      JoinWaitlistRequest  true  "Slot to wait for"
// @Success      201      {object}  WaitlistEntry
// @Failure      400      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /waitlist [post]
func (h *Handler) JoinWaitlist(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req JoinWaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.service.JoinWaitlist(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrOutsideOpenHours):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrCourtNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join waitlist"})
		}
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// ListMyWaitlist godoc
// @Summary      List my waitlist entries
// @Tags         waitlist
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   WaitlistEntry
// @Failure      500  {object}  gin.H
// @Router       /waitlist [get]
func (h *Handler) ListMyWaitlist(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	entries, err := h.service.ListUserWaitlist(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch waitlist"})
		return
	}

	c.JSON(http.StatusOK, entries)
}
