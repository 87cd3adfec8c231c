package equipment

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeRacket = "racket"
	TypeShoes  = "shoes"
)

type Equipment struct {
	ID                uuid.UUID `db:"id" json:"id"`
	Name              string    `db:"name" json:"name"`
	EquipmentType     string    `db:"equipment_type" json:"equipment_type"`
	TotalStock        int       `db:"total_stock" json:"total_stock"`
	PricePerHourCents int64     `db:"price_per_hour_cents" json:"price_per_hour_cents"`
	IsActive          bool      `db:"is_active" json:"is_active"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

type CreateEquipmentRequest struct {
	Name              string `json:"name" binding:"required"`
	EquipmentType     string `json:"equipment_type" binding:"required,oneof=racket shoes"`
	TotalStock        int    `json:"total_stock" binding:"min=0"`
	PricePerHourCents int64  `json:"price_per_hour_cents" binding:"min=0"`
}
