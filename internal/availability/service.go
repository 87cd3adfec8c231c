package availability

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"courtbook/internal/booking"
	"courtbook/internal/cache"
	"courtbook/internal/coach"
	"courtbook/internal/court"
	"courtbook/internal/equipment"
	"courtbook/internal/metrics"
	"courtbook/internal/pricing"
)

var (
	ErrCourtNotFound = errors.New("court not found")
	ErrInvalidDate   = errors.New("invalid date, use YYYY-MM-DD")
	ErrInvalidWindow = errors.New("invalid time window")
)

const (
	dateLayout    = "2006-01-02"
	rulesCacheKey = "refdata:pricing_rules"
)

type Service interface {
	Slots(ctx context.Context, courtID uuid.UUID, date string) ([]TimeSlot, error)
	CoachAvailability(ctx context.Context, date string, hour int) (map[uuid.UUID]bool, error)
	EquipmentAvailability(ctx context.Context, date string, startHour, endHour int) ([]EquipmentStock, error)
}

type service struct {
	bookingRepo   booking.Repository
	courtRepo     court.Repository
	coachRepo     coach.Repository
	equipmentRepo equipment.Repository
	ruleRepo      pricing.Repository
	cache         *cache.Cache
	openHour      int
	closeHour     int
}

func NewService(
	bookingRepo booking.Repository,
	courtRepo court.Repository,
	coachRepo coach.Repository,
	equipmentRepo equipment.Repository,
	ruleRepo pricing.Repository,
	c *cache.Cache,
	openHour, closeHour int,
) Service {
	return &service{
		bookingRepo:   bookingRepo,
		courtRepo:     courtRepo,
		coachRepo:     coachRepo,
		equipmentRepo: equipmentRepo,
		ruleRepo:      ruleRepo,
		cache:         c,
		openHour:      openHour,
		closeHour:     closeHour,
	}
}

func (s *service) rules(ctx context.Context) ([]pricing.Rule, error) {
	var rules []pricing.Rule
	err := s.cache.Fetch(ctx, rulesCacheKey, &rules, func(ctx context.Context) (interface{}, error) {
		return s.ruleRepo.ListRules(ctx)
	})
	return rules, err
}

// Slots computes the availability grid for a court on a date. Bookings are
// always read fresh; only the pricing rules come from the snapshot cache.
func (s *service) Slots(ctx context.Context, courtID uuid.UUID, date string) ([]TimeSlot, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	crt, err := s.courtRepo.GetByID(ctx, courtID)
	if err != nil {
		return nil, ErrCourtNotFound
	}

	confirmed, err := s.bookingRepo.ListConfirmedForCourtDate(ctx, courtID, day)
	if err != nil {
		return nil, err
	}

	rules, err := s.rules(ctx)
	if err != nil {
		return nil, err
	}

	metrics.RecordSlotQuery()
	return BuildSlots(crt, day, confirmed, rules, s.openHour, s.closeHour), nil
}

func (s *service) CoachAvailability(ctx context.Context, date string, hour int) (map[uuid.UUID]bool, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	if hour < 0 || hour > 23 {
		return nil, ErrInvalidWindow
	}

	coaches, err := s.coachRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	var confirmed []booking.Booking
	for _, co := range coaches {
		list, err := s.bookingRepo.ListConfirmedForCoachDate(ctx, co.ID, day)
		if err != nil {
			return nil, err
		}
		confirmed = append(confirmed, list...)
	}

	return CoachAvailabilityMap(coaches, confirmed, hour, hour+1), nil
}

func (s *service) EquipmentAvailability(ctx context.Context, date string, startHour, endHour int) ([]EquipmentStock, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	if startHour < 0 || endHour > 24 || startHour >= endHour {
		return nil, ErrInvalidWindow
	}

	items, err := s.equipmentRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	usage, err := s.bookingRepo.EquipmentUsage(ctx, day, startHour, endHour)
	if err != nil {
		return nil, err
	}

	return RemainingStock(items, usage), nil
}
