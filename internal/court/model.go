package court

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeIndoor  = "indoor"
	TypeOutdoor = "outdoor"
)

type Court struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	CourtType      string    `db:"court_type" json:"court_type"`
	BasePriceCents int64     `db:"base_price_cents" json:"base_price_cents"`
	IsActive       bool      `db:"is_active" json:"is_active"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type CreateCourtRequest struct {
	Name           string `json:"name" binding:"required"`
	CourtType      string `json:"court_type" binding:"required,oneof=indoor outdoor"`
	BasePriceCents int64  `json:"base_price_cents" binding:"min=0"`
}
