package pricing

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Rule types known to the evaluator. rule_type is an open set; unknown types
// are stored but never priced.
const (
	RuleTypePeakHour      = "peak_hour"
	RuleTypeWeekend       = "weekend"
	RuleTypeIndoorPremium = "indoor_premium"
)

type Rule struct {
	ID             uuid.UUID      `db:"id" json:"id"`
	Name           string         `db:"name" json:"name"`
	Description    *string        `db:"description" json:"description,omitempty"`
	RuleType       string         `db:"rule_type" json:"rule_type"`
	Multiplier     float64        `db:"multiplier" json:"multiplier"`
	SurchargeCents int64          `db:"surcharge_cents" json:"surcharge_cents"`
	StartHour      *int           `db:"start_hour" json:"start_hour,omitempty"`
	EndHour        *int           `db:"end_hour" json:"end_hour,omitempty"`
	AppliesToDays  pq.StringArray `db:"applies_to_days" json:"applies_to_days,omitempty"`
	IsActive       bool           `db:"is_active" json:"is_active"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
}

type CreateRuleRequest struct {
	Name           string   `json:"name" binding:"required" validate:"required"`
	Description    *string  `json:"description"`
	RuleType       string   `json:"rule_type" binding:"required" validate:"required"`
	Multiplier     float64  `json:"multiplier" validate:"gte=0"`
	SurchargeCents int64    `json:"surcharge_cents" validate:"gte=0"`
	StartHour      *int     `json:"start_hour" validate:"omitempty,gte=0,lte=23"`
	EndHour        *int     `json:"end_hour" validate:"omitempty,gte=1,lte=24"`
	AppliesToDays  []string `json:"applies_to_days" validate:"dive,oneof=sunday monday tuesday wednesday thursday friday saturday"`
}

// Breakdown is the itemized fee structure for one one-hour slot. All amounts
// are integer cents; TotalCents is always the sum of the six components.
type Breakdown struct {
	BasePriceCents    int64 `json:"base_price_cents"`
	PeakFeeCents      int64 `json:"peak_fee_cents"`
	WeekendFeeCents   int64 `json:"weekend_fee_cents"`
	IndoorFeeCents    int64 `json:"indoor_fee_cents"`
	EquipmentFeeCents int64 `json:"equipment_fee_cents"`
	CoachFeeCents     int64 `json:"coach_fee_cents"`
	TotalCents        int64 `json:"total_cents"`
}
