package equipment

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	ListActive(ctx context.Context) ([]Equipment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Equipment, error)
	Create(ctx context.Context, req CreateEquipmentRequest) (*Equipment, error)
}
