package coach

import (
	"time"

	"github.com/google/uuid"
)

type Coach struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Bio             *string   `db:"bio" json:"bio,omitempty"`
	AvatarURL       *string   `db:"avatar_url" json:"avatar_url,omitempty"`
	HourlyRateCents int64     `db:"hourly_rate_cents" json:"hourly_rate_cents"`
	IsActive        bool      `db:"is_active" json:"is_active"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type CreateCoachRequest struct {
	Name            string  `json:"name" binding:"required"`
	Bio             *string `json:"bio"`
	AvatarURL       *string `json:"avatar_url"`
	HourlyRateCents int64   `json:"hourly_rate_cents" binding:"min=0"`
}
