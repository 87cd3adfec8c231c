package court

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	ListActive(ctx context.Context) ([]Court, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Court, error)
	Create(ctx context.Context, req CreateCourtRequest) (*Court, error)
}
