package equipment

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func equipmentColumns() []string {
	return []string{"id", "name", "equipment_type", "total_stock", "price_per_hour_cents", "is_active", "created_at"}
}

func TestListActive(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`FROM equipment\s+WHERE is_active = TRUE`).
		WillReturnRows(sqlmock.NewRows(equipmentColumns()).
			AddRow(uuid.New(), "Pro Racket", TypeRacket, 10, int64(400), true, time.Now()).
			AddRow(uuid.New(), "Court Shoes", TypeShoes, 5, int64(250), true, time.Now()))

	items, err := repo.ListActive(context.Background())
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, TypeRacket, items[0].EquipmentType)
	assert.Equal(t, 10, items[0].TotalStock)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	id := uuid.New()
	mock.ExpectQuery(`FROM equipment\s+WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(equipmentColumns()).
			AddRow(id, "Pro Racket", TypeRacket, 10, int64(400), true, time.Now()))

	item, err := repo.GetByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, id, item.ID)
	assert.Equal(t, int64(400), item.PricePerHourCents)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO equipment \(name, equipment_type, total_stock, price_per_hour_cents\)`).
		WithArgs("Court Shoes", TypeShoes, 5, int64(250)).
		WillReturnRows(sqlmock.NewRows(equipmentColumns()).
			AddRow(uuid.New(), "Court Shoes", TypeShoes, 5, int64(250), true, time.Now()))

	item, err := repo.Create(context.Background(), CreateEquipmentRequest{
		Name: "Court Shoes", EquipmentType: TypeShoes, TotalStock: 5, PricePerHourCents: 250,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Court Shoes", item.Name)
	assert.True(t, item.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}
