package availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"courtbook/internal/booking"
	"courtbook/internal/cache"
	"courtbook/internal/coach"
	"courtbook/internal/court"
	"courtbook/internal/equipment"
	"courtbook/internal/pricing"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB, c *cache.Cache, openHour, closeHour int) *Handler {
	return &Handler{
		service: NewService(
			booking.NewRepository(db),
			court.NewRepository(db),
			coach.NewRepository(db),
			equipment.NewRepository(db),
			pricing.NewRepository(db),
			c,
			openHour, closeHour,
		),
	}
}

// CourtSlots godoc
// @Summary      Court availability
// @Description  Returns the hourly slot grid for a court on a date.
// @Tags         availability
// @Security     BearerAuth
// @Produce      json
// @Param        courtID  path      string  true  "Court ID"
// @Param        date     query     string  true  "Date (YYYY-MM-DD)"
// @Success      200      {array}   TimeSlot
// @Failure      400      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /courts/{courtID}/slots [get]
func (h *Handler) CourtSlots(c *gin.Context) {
	courtID, err := uuid.Parse(c.Param("courtID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid court ID"})
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query param is required"})
		return
	}

	slots, err := h.service.Slots(c.Request.Context(), courtID, date)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrCourtNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute availability"})
		}
		return
	}

	c.JSON(http.StatusOK, slots)
}

// CoachAvailability godoc
// @Summary      Coach availability
// @Description  Returns a coach-id to availability mapping for a date and hour.
// @Tags         availability
// @Security     BearerAuth
// @Produce      json
// @Param        date  query     string  true  "Date (YYYY-MM-DD)"
// @Param        hour  query     int     true  "Start hour (0-23)"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  gin.H
// @Failure      500   {object}  gin.H
// @Router       /coaches/availability [get]
func (h *Handler) CoachAvailability(c *gin.Context) {
	date := c.Query("date")
	hourStr := c.Query("hour")
	if date == "" || hourStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and hour query params are required"})
		return
	}

	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hour must be an integer"})
		return
	}

	availability, err := h.service.CoachAvailability(c.Request.Context(), date, hour)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInvalidWindow):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute coach availability"})
		}
		return
	}

	c.JSON(http.StatusOK, availability)
}

// EquipmentAvailability godoc
// @Summary      Equipment remaining stock
// @Description  Returns per-item remaining stock for a date and time window.
// @Tags         availability
// @Security     BearerAuth
// @Produce      json
// @Param        date        query     string  true  "Date (YYYY-MM-DD)"
// @Param        start_hour  query     int     true  "Window start hour"
// @Param        end_hour    query     int     true  "Window end hour"
// @Success      200         {array}   EquipmentStock
// @Failure      400         {object}  gin.H
// @Failure      500         {object}  gin.H
// @Router       /equipment/availability [get]
func (h *Handler) EquipmentAvailability(c *gin.Context) {
	date := c.Query("date")
	startStr := c.Query("start_hour")
	endStr := c.Query("end_hour")
	if date == "" || startStr == "" || endStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date, start_hour and end_hour query params are required"})
		return
	}

	startHour, err := strconv.Atoi(startStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_hour must be an integer"})
		return
	}

	endHour, err := strconv.Atoi(endStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_hour must be an integer"})
		return
	}

	stocks, err := h.service.EquipmentAvailability(c.Request.Context(), date, startHour, endHour)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInvalidWindow):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute equipment availability"})
		}
		return
	}

	c.JSON(http.StatusOK, stocks)
}
