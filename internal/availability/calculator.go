package availability

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"courtbook/internal/booking"
	"courtbook/internal/coach"
	"courtbook/internal/court"
	"courtbook/internal/equipment"
	"courtbook/internal/pricing"
)

// TimeSlot is one bookable one-hour interval on the availability grid.
// PriceCents is the display price (base, peak, weekend and indoor premium;
// no coach or equipment).
type TimeSlot struct {
	Hour       int    `json:"hour"`
	Time       string `json:"time"`
	Available  bool   `json:"available"`
	PriceCents int64  `json:"price_cents"`
	IsPeak     bool   `json:"is_peak"`
}

// overlaps reports whether a booking occupies any part of [startHour, endHour).
func overlaps(b booking.Booking, startHour, endHour int) bool {
	return b.StartHour < endHour && b.EndHour > startHour
}

// BuildSlots derives the grid of bookable slots for a court on a date from
// the confirmed bookings of that court/date. One slot per hour in
// [openHour, closeHour), ascending; a slot is unavailable iff a confirmed
// booking overlaps its hour. Pure: no clock, no I/O.
func BuildSlots(crt *court.Court, date time.Time, confirmed []booking.Booking, rules []pricing.Rule, openHour, closeHour int) []TimeSlot {
	if crt == nil {
		return nil
	}

	slots := make([]TimeSlot, 0, closeHour-openHour)
	for hour := openHour; hour < closeHour; hour++ {
		available := true
		for _, b := range confirmed {
			if overlaps(b, hour, hour+1) {
				available = false
				break
			}
		}

		slots = append(slots, TimeSlot{
			Hour:       hour,
			Time:       fmt.Sprintf("%02d:00", hour),
			Available:  available,
			PriceCents: pricing.DisplayPriceCents(crt, hour, date, rules),
			IsPeak:     pricing.IsPeakHour(hour, rules),
		})
	}

	return slots
}

// CoachAvailabilityMap reports, per coach, whether the coach is free for
// [startHour, endHour) given that day's confirmed bookings. A coach with no
// conflicting booking defaults to available.
func CoachAvailabilityMap(coaches []coach.Coach, confirmed []booking.Booking, startHour, endHour int) map[uuid.UUID]bool {
	availability := make(map[uuid.UUID]bool, len(coaches))
	for _, co := range coaches {
		availability[co.ID] = true
	}

	for _, b := range confirmed {
		if b.CoachID == nil || !overlaps(b, startHour, endHour) {
			continue
		}
		if _, known := availability[*b.CoachID]; known {
			availability[*b.CoachID] = false
		}
	}

	return availability
}

// EquipmentStock is the remaining stock of one equipment item for a window.
type EquipmentStock struct {
	EquipmentID uuid.UUID `json:"equipment_id"`
	Name        string    `json:"name"`
	TotalStock  int       `json:"total_stock"`
	Remaining   int       `json:"remaining"`
}

// RemainingStock subtracts the used quantities from each item's total stock.
func RemainingStock(items []equipment.Equipment, usage map[uuid.UUID]int) []EquipmentStock {
	stocks := make([]EquipmentStock, 0, len(items))
	for _, item := range items {
		stocks = append(stocks, EquipmentStock{
			EquipmentID: item.ID,
			Name:        item.Name,
			TotalStock:  item.TotalStock,
			Remaining:   item.TotalStock - usage[item.ID],
		})
	}
	return stocks
}
