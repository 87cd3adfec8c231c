package equipment

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListActive(ctx context.Context) ([]Equipment, error) {
	query := `
		SELECT id, name, equipment_type, total_stock, price_per_hour_cents, is_active, created_at
		FROM equipment
		WHERE is_active = TRUE
		ORDER BY name ASC
	`

	var items []Equipment
	err := r.db.SelectContext(ctx, &items, query)
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Equipment, error) {
	query := `
		SELECT id, name, equipment_type, total_stock, price_per_hour_cents, is_active, created_at
		FROM equipment
		WHERE id = $1
	`

	var e Equipment
	err := r.db.GetContext(ctx, &e, query, id)
	if err != nil {
		return nil, err
	}

	return &e, nil
}

func (r *repository) Create(ctx context.Context, req CreateEquipmentRequest) (*Equipment, error) {
	query := `
		INSERT INTO equipment (name, equipment_type, total_stock, price_per_hour_cents)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, equipment_type, total_stock, price_per_hour_cents, is_active, created_at
	`

	var e Equipment
	err := r.db.GetContext(ctx, &e, query, req.Name, req.EquipmentType, req.TotalStock, req.PricePerHourCents)
	if err != nil {
		return nil, err
	}

	return &e, nil
}
