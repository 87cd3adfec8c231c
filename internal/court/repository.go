package court

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

func (r *repository) ListActive(ctx context.Context) ([]Court, error) {
	query := `
		SELECT id, name, court_type, base_price_cents, is_active, created_at
		FROM courts
		WHERE is_active = TRUE
		ORDER BY name ASC
	`

	var courts []Court
	err := r.db.SelectContext(ctx, &courts, query)
	if err != nil {
		return nil, err
	}

	return courts, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Court, error) {
	query := `
		SELECT id, name, court_type, base_price_cents, is_active, created_at
		FROM courts
		WHERE id = $1
	`

	var c Court
	err := r.db.GetContext(ctx, &c, query, id)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *repository) Create(ctx context.Context, req CreateCourtRequest) (*Court, error) {
	query := `
		INSERT INTO courts (name, court_type, base_price_cents)
		VALUES ($1, $2, $3)
		RETURNING id, name, court_type, base_price_cents, is_active, created_at
	`

	var c Court
	err := r.db.GetContext(ctx, &c, query, req.Name, req.CourtType, req.BasePriceCents)
	if err != nil {
		return nil, err
	}

	return &c, nil
}
