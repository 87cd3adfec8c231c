package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"courtbook/internal/coach"
	"courtbook/internal/court"
	"courtbook/internal/metrics"
)

var (
	ErrUnauthenticated  = errors.New("authentication required")
	ErrInvalidDate      = errors.New("invalid date, use YYYY-MM-DD")
	ErrOutsideOpenHours = errors.New("start hour is outside opening hours")
	ErrCourtNotFound    = errors.New("court not found")
	ErrCoachNotFound    = errors.New("coach not found")
	ErrTotalMismatch    = errors.New("total does not equal the sum of fee components")
	ErrNotOwner         = errors.New("can only cancel own bookings")
)

const dateLayout = "2006-01-02"

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, req CreateBookingRequest) (*Booking, error)
	ListUserBookings(ctx context.Context, userID uuid.UUID) ([]BookingWithDetails, error)
	Cancel(ctx context.Context, userID, bookingID uuid.UUID) error
	JoinWaitlist(ctx context.Context, userID uuid.UUID, req JoinWaitlistRequest) (*WaitlistEntry, error)
	ListUserWaitlist(ctx context.Context, userID uuid.UUID) ([]WaitlistEntry, error)
}

type service struct {
	repo      Repository
	courtRepo court.Repository
	coachRepo coach.Repository
	openHour  int
	closeHour int
}

func NewService(repo Repository, courtRepo court.Repository, coachRepo coach.Repository, openHour, closeHour int) Service {
	return &service{
		repo:      repo,
		courtRepo: courtRepo,
		coachRepo: coachRepo,
		openHour:  openHour,
		closeHour: closeHour,
	}
}

// Create validates the request against current reference data and hands it to
// the transactional writer. The client's breakdown is accepted as the
// snapshotted price, but only after the total is verified against the sum of
// its components; availability itself is never trusted from the client.
func (s *service) Create(ctx context.Context, userID uuid.UUID, req CreateBookingRequest) (*Booking, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	if req.StartHour < s.openHour || req.StartHour >= s.closeHour {
		return nil, ErrOutsideOpenHours
	}

	sum := req.BasePriceCents + req.PeakFeeCents + req.WeekendFeeCents + req.IndoorFeeCents +
		req.EquipmentFeeCents + req.CoachFeeCents
	if req.TotalCents != sum {
		return nil, ErrTotalMismatch
	}

	crt, err := s.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil || !crt.IsActive {
		return nil, ErrCourtNotFound
	}

	if req.CoachID != nil {
		co, err := s.coachRepo.GetByID(ctx, *req.CoachID)
		if err != nil || !co.IsActive {
			return nil, ErrCoachNotFound
		}
	}

	b, err := s.repo.Create(ctx, userID, date, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotTaken), errors.Is(err, ErrCoachUnavailable), errors.Is(err, ErrEquipmentUnavailable):
			metrics.RecordBooking("conflict")
			metrics.RecordBookingConflict()
		default:
			metrics.RecordBooking("error")
		}
		return nil, err
	}

	metrics.RecordBooking("confirmed")
	return b, nil
}

func (s *service) ListUserBookings(ctx context.Context, userID uuid.UUID) ([]BookingWithDetails, error) {
	return s.repo.ListForUser(ctx, userID)
}

// Cancel transitions a confirmed booking to cancelled. Cancelling an already
// cancelled booking is a no-op success, so retried cancellations never error.
func (s *service) Cancel(ctx context.Context, userID, bookingID uuid.UUID) error {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return ErrBookingNotFound
	}

	if b.UserID != userID {
		return ErrNotOwner
	}

	if b.Status == StatusCancelled {
		return nil
	}

	err = s.repo.Cancel(ctx, bookingID)
	if err != nil {
		if errors.Is(err, ErrBookingNotFoundOrAlreadyCancelled) {
			// Lost the race with another cancel; same outcome.
			return nil
		}
		return err
	}

	metrics.RecordBookingCancellation()
	return nil
}

func (s *service) JoinWaitlist(ctx context.Context, userID uuid.UUID, req JoinWaitlistRequest) (*WaitlistEntry, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	if req.StartHour < s.openHour || req.StartHour >= s.closeHour {
		return nil, ErrOutsideOpenHours
	}

	if _, err := s.courtRepo.GetByID(ctx, req.CourtID); err != nil {
		return nil, ErrCourtNotFound
	}

	entry, err := s.repo.JoinWaitlist(ctx, userID, req.CourtID, date, req.StartHour)
	if err != nil {
		return nil, err
	}

	metrics.RecordWaitlistJoin()
	return entry, nil
}

func (s *service) ListUserWaitlist(ctx context.Context, userID uuid.UUID) ([]WaitlistEntry, error) {
	return s.repo.ListWaitlistForUser(ctx, userID)
}
