package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, userID uuid.UUID, date time.Time, req CreateBookingRequest) (*Booking, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	Cancel(ctx context.Context, id uuid.UUID) error
	ListForUser(ctx context.Context, userID uuid.UUID) ([]BookingWithDetails, error)
	EquipmentLinesForBooking(ctx context.Context, bookingID uuid.UUID) ([]EquipmentLine, error)

	ListConfirmedForCourtDate(ctx context.Context, courtID uuid.UUID, date time.Time) ([]Booking, error)
	ListConfirmedForCoachDate(ctx context.Context, coachID uuid.UUID, date time.Time) ([]Booking, error)
	EquipmentUsage(ctx context.Context, date time.Time, startHour, endHour int) (map[uuid.UUID]int, error)

	JoinWaitlist(ctx context.Context, userID uuid.UUID, courtID uuid.UUID, date time.Time, startHour int) (*WaitlistEntry, error)
	ListWaitlistForUser(ctx context.Context, userID uuid.UUID) ([]WaitlistEntry, error)
}
