package court

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

func TestListActive(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT id, name, court_type, base_price_cents, is_active, created_at\s+FROM courts\s+WHERE is_active = TRUE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "court_type", "base_price_cents", "is_active", "created_at"}).
			AddRow(uuid.New(), "Court 1", TypeIndoor, int64(2000), true, time.Now()).
			AddRow(uuid.New(), "Court 2", TypeOutdoor, int64(1500), true, time.Now()))

	courts, err := repo.ListActive(context.Background())
	assert.NoError(t, err)
	assert.Len(t, courts, 2)
	assert.Equal(t, "Court 1", courts[0].Name)
	assert.Equal(t, int64(2000), courts[0].BasePriceCents)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	id := uuid.New()
	mock.ExpectQuery(`SELECT id, name, court_type, base_price_cents, is_active, created_at\s+FROM courts\s+WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "court_type", "base_price_cents", "is_active", "created_at"}).
			AddRow(id, "Court 1", TypeIndoor, int64(2000), true, time.Now()))

	c, err := repo.GetByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, id, c.ID)
	assert.Equal(t, TypeIndoor, c.CourtType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	id := uuid.New()
	mock.ExpectQuery(`SELECT id, name, court_type, base_price_cents, is_active, created_at\s+FROM courts\s+WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "court_type", "base_price_cents", "is_active", "created_at"}))

	_, err := repo.GetByID(context.Background(), id)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO courts \(name, court_type, base_price_cents\)`).
		WithArgs("Court 3", TypeOutdoor, int64(1800)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "court_type", "base_price_cents", "is_active", "created_at"}).
			AddRow(uuid.New(), "Court 3", TypeOutdoor, int64(1800), true, time.Now()))

	c, err := repo.Create(context.Background(), CreateCourtRequest{Name: "Court 3", CourtType: TypeOutdoor, BasePriceCents: 1800})
	assert.NoError(t, err)
	assert.Equal(t, "Court 3", c.Name)
	assert.True(t, c.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}
