package coach

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

func (r *repository) ListActive(ctx context.Context) ([]Coach, error) {
	query := `
		SELECT id, name, bio, avatar_url, hourly_rate_cents, is_active, created_at
		FROM coaches
		WHERE is_active = TRUE
		ORDER BY name ASC
	`

	var coaches []Coach
	err := r.db.SelectContext(ctx, &coaches, query)
	if err != nil {
		return nil, err
	}

	return coaches, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Coach, error) {
	query := `
		SELECT id, name, bio, avatar_url, hourly_rate_cents, is_active, created_at
		FROM coaches
		WHERE id = $1
	`

	var co Coach
	err := r.db.GetContext(ctx, &co, query, id)
	if err != nil {
		return nil, err
	}

	return &co, nil
}

func (r *repository) Create(ctx context.Context, req CreateCoachRequest) (*Coach, error) {
	query := `
		INSERT INTO coaches (name, bio, avatar_url, hourly_rate_cents)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, bio, avatar_url, hourly_rate_cents, is_active, created_at
	`

	var co Coach
	err := r.db.GetContext(ctx, &co, query, req.Name, req.Bio, req.AvatarURL, req.HourlyRateCents)
	if err != nil {
		return nil, err
	}

	return &co, nil
}
