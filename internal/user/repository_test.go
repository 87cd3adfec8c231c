package user

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

func userColumns() []string {
	return []string{"id", "name", "email", "password_hash", "role", "created_at"}
}

func TestCreateUser(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO users \(name, email, password_hash, role\)`).
		WithArgs("Jordan", "jordan@example.com", "hashed", "member").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(uuid.New(), "Jordan", "jordan@example.com", "hashed", "member", time.Now()))

	u, err := repo.Create(context.Background(), "Jordan", "jordan@example.com", "hashed", "member")
	assert.NoError(t, err)
	assert.Equal(t, "jordan@example.com", u.Email)
	assert.Equal(t, "member", u.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByEmail(t *testing.T) {
	repo, mock := newMockRepo(t)

	id := uuid.New()
	mock.ExpectQuery(`FROM users\s+WHERE email = \$1`).
		WithArgs("jordan@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(id, "Jordan", "jordan@example.com", "hashed", "member", time.Now()))

	u, err := repo.FindByEmail(context.Background(), "jordan@example.com")
	assert.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByEmail_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`FROM users\s+WHERE email = \$1`).
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	id := uuid.New()
	mock.ExpectQuery(`FROM users\s+WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(id, "Jordan", "jordan@example.com", "hashed", "member", time.Now()))

	u, err := repo.FindByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, "Jordan", u.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmailExists(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM users WHERE email = \$1\)`).
		WithArgs("jordan@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.EmailExists(context.Background(), "jordan@example.com")
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
