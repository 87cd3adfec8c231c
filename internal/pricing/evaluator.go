package pricing

import (
	"math"
	"time"

	"courtbook/internal/coach"
	"courtbook/internal/court"
	"courtbook/internal/equipment"
)

// Selection pairs an equipment item with the quantity the user wants for the
// hour being priced.
type Selection struct {
	Equipment equipment.Equipment
	Quantity  int
}

// findRule returns the first active rule of the given type. At most one
// active rule per type is expected; under duplicates the first one in the
// slice wins (repositories return rules in creation order, so the oldest
// active rule is authoritative).
func findRule(rules []Rule, ruleType string) *Rule {
	for i := range rules {
		if rules[i].RuleType == ruleType && rules[i].IsActive {
			return &rules[i]
		}
	}
	return nil
}

func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsPeakHour reports whether hour falls inside the active peak rule's
// [start, end) window.
func IsPeakHour(hour int, rules []Rule) bool {
	rule := findRule(rules, RuleTypePeakHour)
	if rule == nil || rule.StartHour == nil || rule.EndHour == nil {
		return false
	}
	return hour >= *rule.StartHour && hour < *rule.EndHour
}

// ComputePrice computes the fee breakdown for one one-hour slot. It is a pure
// function: the clock never enters here, hour and date are explicit inputs,
// and the full rule set is filtered for active rules internally.
//
// The categories are additive and never compound: the peak fee scales the base
// price by (multiplier - 1) plus a flat surcharge, while weekend and indoor
// premium contribute their flat surcharge only.
func ComputePrice(crt *court.Court, co *coach.Coach, selections []Selection, hour int, date time.Time, rules []Rule) Breakdown {
	var b Breakdown
	if crt == nil {
		return b
	}

	b.BasePriceCents = crt.BasePriceCents

	if rule := findRule(rules, RuleTypePeakHour); rule != nil && rule.StartHour != nil && rule.EndHour != nil {
		if hour >= *rule.StartHour && hour < *rule.EndHour {
			b.PeakFeeCents = int64(math.Round(float64(b.BasePriceCents)*(rule.Multiplier-1))) + rule.SurchargeCents
		}
	}

	if rule := findRule(rules, RuleTypeWeekend); rule != nil && IsWeekend(date) {
		b.WeekendFeeCents = rule.SurchargeCents
	}

	if rule := findRule(rules, RuleTypeIndoorPremium); rule != nil && crt.CourtType == court.TypeIndoor {
		b.IndoorFeeCents = rule.SurchargeCents
	}

	for _, sel := range selections {
		b.EquipmentFeeCents += sel.Equipment.PricePerHourCents * int64(sel.Quantity)
	}

	if co != nil {
		b.CoachFeeCents = co.HourlyRateCents
	}

	b.TotalCents = b.BasePriceCents + b.PeakFeeCents + b.WeekendFeeCents + b.IndoorFeeCents + b.EquipmentFeeCents + b.CoachFeeCents

	return b
}

// DisplayPriceCents is the per-slot price shown on the availability grid:
// base plus the time- and court-dependent fees, excluding coach and equipment.
func DisplayPriceCents(crt *court.Court, hour int, date time.Time, rules []Rule) int64 {
	b := ComputePrice(crt, nil, nil, hour, date, rules)
	return b.BasePriceCents + b.PeakFeeCents + b.WeekendFeeCents + b.IndoorFeeCents
}
