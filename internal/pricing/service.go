package pricing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"courtbook/internal/coach"
	"courtbook/internal/court"
	"courtbook/internal/equipment"
)

var (
	ErrCourtNotFound     = errors.New("court not found")
	ErrCoachNotFound     = errors.New("coach not found")
	ErrEquipmentNotFound = errors.New("equipment not found")
	ErrInvalidDate       = errors.New("invalid date, use YYYY-MM-DD")
	ErrInvalidHour       = errors.New("hour must be between 0 and 23")
	ErrInvalidQuantity   = errors.New("equipment quantity must be at least 1")
)

const DateLayout = "2006-01-02"

type QuoteRequest struct {
	CourtID   uuid.UUID          `json:"court_id" binding:"required"`
	CoachID   *uuid.UUID         `json:"coach_id"`
	Date      string             `json:"date" binding:"required"`
	Hour      int                `json:"hour"`
	Equipment []QuoteEquipmentIn `json:"equipment"`
}

type QuoteEquipmentIn struct {
	EquipmentID uuid.UUID `json:"equipment_id" binding:"required"`
	Quantity    int       `json:"quantity" binding:"required,min=1"`
}

type Service interface {
	Quote(ctx context.Context, req QuoteRequest) (*Breakdown, error)
	ListRules(ctx context.Context) ([]Rule, error)
}

type service struct {
	ruleRepo      Repository
	courtRepo     court.Repository
	coachRepo     coach.Repository
	equipmentRepo equipment.Repository
}

func NewService(ruleRepo Repository, courtRepo court.Repository, coachRepo coach.Repository, equipmentRepo equipment.Repository) Service {
	return &service{
		ruleRepo:      ruleRepo,
		courtRepo:     courtRepo,
		coachRepo:     coachRepo,
		equipmentRepo: equipmentRepo,
	}
}

// Quote resolves the selection against current reference data and runs the
// evaluator. Prices are quoted from a fresh snapshot; nothing is persisted.
func (s *service) Quote(ctx context.Context, req QuoteRequest) (*Breakdown, error) {
	if req.Hour < 0 || req.Hour > 23 {
		return nil, ErrInvalidHour
	}

	date, err := time.Parse(DateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	crt, err := s.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil || !crt.IsActive {
		return nil, ErrCourtNotFound
	}

	var co *coach.Coach
	if req.CoachID != nil {
		co, err = s.coachRepo.GetByID(ctx, *req.CoachID)
		if err != nil || !co.IsActive {
			return nil, ErrCoachNotFound
		}
	}

	selections := make([]Selection, 0, len(req.Equipment))
	for _, in := range req.Equipment {
		if in.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		item, err := s.equipmentRepo.GetByID(ctx, in.EquipmentID)
		if err != nil || !item.IsActive {
			return nil, ErrEquipmentNotFound
		}
		selections = append(selections, Selection{Equipment: *item, Quantity: in.Quantity})
	}

	rules, err := s.ruleRepo.ListRules(ctx)
	if err != nil {
		return nil, err
	}

	breakdown := ComputePrice(crt, co, selections, req.Hour, date, rules)
	return &breakdown, nil
}

func (s *service) ListRules(ctx context.Context) ([]Rule, error) {
	return s.ruleRepo.ListRules(ctx)
}
