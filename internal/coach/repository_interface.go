package coach

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	ListActive(ctx context.Context) ([]Coach, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Coach, error)
	Create(ctx context.Context, req CreateCoachRequest) (*Coach, error)
}
