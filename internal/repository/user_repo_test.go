package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"chatbot_mcp/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userCols = []string{"id", "name", "email", "phone", "email_verified", "password_hash", "status", "created_at", "updated_at"}

func strPtr(s string) *string { return &s }

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestUserRepository_FindByPhone(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)
	created := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE phone = \$1 ORDER BY created_at, id LIMIT 1`).
		WithArgs("5555123456789").
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow("u-1", "John Doe", "john@acme.com", strPtr("5555123456789"), nil, strPtr("hash"), "active", created, created))

	user, err := repo.FindByPhone(context.Background(), "5555123456789")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "John Doe", user.Name)
	assert.Equal(t, "5555123456789", user.PhoneOrEmpty())
	assert.Nil(t, user.EmailVerified)
	assert.Equal(t, model.UserStatusActive, user.Status)
	assert.Equal(t, created, user.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByPhone_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE phone = \$1`).
		WithArgs("000").
		WillReturnError(pgx.ErrNoRows)

	user, err := repo.FindByPhone(context.Background(), "000")
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID_DBError(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs("u-1").
		WillReturnError(errors.New("db down"))

	user, err := repo.FindByID(context.Background(), "u-1")
	assert.Nil(t, user)
	assert.ErrorContains(t, err, "failed to find user by ID: db down")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByStatus(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE status = \$1 ORDER BY created_at, id`).
		WithArgs("inactive").
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow("u-2", "Ana Lima", "ana@example.com", nil, nil, nil, "inactive", now, now).
			AddRow("u-3", "Rui Costa", "rui@example.com", nil, nil, nil, "inactive", now, now))

	users, err := repo.FindByStatus(context.Background(), "inactive")
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "u-2", users[0].ID)
	assert.Equal(t, "u-3", users[1].ID)
	assert.Nil(t, users[0].Phone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByStatus_EmptyIsNotNil(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE status = \$1`).
		WithArgs("active").
		WillReturnRows(pgxmock.NewRows(userCols))

	users, err := repo.FindByStatus(context.Background(), "active")
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUserRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)
	now := time.Now().UTC()

	u := &model.User{Name: "John Doe", Email: "john@acme.com", Phone: strPtr("5555123456789"), PasswordHash: strPtr("hash"), Status: "active"}
	mock.ExpectQuery(`INSERT INTO users \(name, email, phone, password_hash, status\)`).
		WithArgs(u.Name, u.Email, u.Phone, u.PasswordHash, u.Status).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("u-1", now, now))

	require.NoError(t, repo.Create(context.Background(), u))
	assert.Equal(t, "u-1", u.ID)
	assert.Equal(t, now, u.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_DeleteAll(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectExec(`DELETE FROM users`).WillReturnResult(pgxmock.NewResult("DELETE", 3))

	n, err := repo.DeleteAll(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
