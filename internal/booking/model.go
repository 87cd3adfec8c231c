package booking

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusWaitlist  = "waitlist"
)

type Booking struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	UserID      uuid.UUID  `db:"user_id" json:"user_id"`
	CourtID     uuid.UUID  `db:"court_id" json:"court_id"`
	CoachID     *uuid.UUID `db:"coach_id" json:"coach_id,omitempty"`
	BookingDate time.Time  `db:"booking_date" json:"booking_date"`
	StartHour   int        `db:"start_hour" json:"start_hour"`
	EndHour     int        `db:"end_hour" json:"end_hour"`
	Status      string     `db:"status" json:"status"`

	BasePriceCents    int64 `db:"base_price_cents" json:"base_price_cents"`
	PeakFeeCents      int64 `db:"peak_fee_cents" json:"peak_fee_cents"`
	WeekendFeeCents   int64 `db:"weekend_fee_cents" json:"weekend_fee_cents"`
	IndoorFeeCents    int64 `db:"indoor_fee_cents" json:"indoor_fee_cents"`
	EquipmentFeeCents int64 `db:"equipment_fee_cents" json:"equipment_fee_cents"`
	CoachFeeCents     int64 `db:"coach_fee_cents" json:"coach_fee_cents"`
	TotalCents        int64 `db:"total_cents" json:"total_cents"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type EquipmentLine struct {
	ID          uuid.UUID `db:"id" json:"id"`
	BookingID   uuid.UUID `db:"booking_id" json:"booking_id"`
	EquipmentID uuid.UUID `db:"equipment_id" json:"equipment_id"`
	Quantity    int       `db:"quantity" json:"quantity"`
	PriceCents  int64     `db:"price_cents" json:"price_cents"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// BookingWithDetails joins court and coach names for the booking list view.
type BookingWithDetails struct {
	Booking
	CourtName string  `db:"court_name" json:"court_name"`
	CourtType string  `db:"court_type" json:"court_type"`
	CoachName *string `db:"coach_name" json:"coach_name,omitempty"`
}

type WaitlistEntry struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	CourtID     uuid.UUID `db:"court_id" json:"court_id"`
	BookingDate time.Time `db:"booking_date" json:"booking_date"`
	StartHour   int       `db:"start_hour" json:"start_hour"`
	EndHour     int       `db:"end_hour" json:"end_hour"`
	Position    int       `db:"position" json:"position"`
	Notified    bool      `db:"notified" json:"notified"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type EquipmentLineRequest struct {
	EquipmentID uuid.UUID `json:"equipment_id" binding:"required"`
	Quantity    int       `json:"quantity" binding:"required,min=1"`
	PriceCents  int64     `json:"price_cents" binding:"min=0"`
}

// CreateBookingRequest carries the client's selection and the fee breakdown
// it was shown. The writer verifies the total against the components and
// re-checks availability transactionally before anything is inserted.
type CreateBookingRequest struct {
	CourtID   uuid.UUID  `json:"court_id" binding:"required"`
	CoachID   *uuid.UUID `json:"coach_id"`
	Date      string     `json:"date" binding:"required"`
	StartHour int        `json:"start_hour" binding:"min=0,max=23"`

	BasePriceCents    int64 `json:"base_price_cents" binding:"min=0"`
	PeakFeeCents      int64 `json:"peak_fee_cents" binding:"min=0"`
	WeekendFeeCents   int64 `json:"weekend_fee_cents" binding:"min=0"`
	IndoorFeeCents    int64 `json:"indoor_fee_cents" binding:"min=0"`
	EquipmentFeeCents int64 `json:"equipment_fee_cents" binding:"min=0"`
	CoachFeeCents     int64 `json:"coach_fee_cents" binding:"min=0"`
	TotalCents        int64 `json:"total_cents" binding:"min=0"`

	Equipment []EquipmentLineRequest `json:"equipment"`
}

type JoinWaitlistRequest struct {
	CourtID   uuid.UUID `json:"court_id" binding:"required"`
	Date      string    `json:"date" binding:"required"`
	StartHour int       `json:"start_hour" binding:"min=0,max=23"`
}

type CancelBookingResponse struct {
	Message string `json:"message" example:"Booking cancelled successfully"`
}
