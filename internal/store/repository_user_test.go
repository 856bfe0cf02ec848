package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mshevelev/vault-hub/internal/logger"
	"github.com/mshevelev/vault-hub/models"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &DB{
		DB:         db,
		classifier: NewPostgresErrorClassifier(),
		logger:     logger.Nop(),
	}, mock
}

func TestCreateUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	created := time.Now()
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("alice", "deadbeef", "Alice").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "login", "password_hash", "name", "created_at"}).
			AddRow(int64(1), "alice", "deadbeef", "Alice", created))

	user, err := repo.CreateUser(context.Background(), models.User{
		Login:        "alice",
		PasswordHash: "deadbeef",
		Name:         "Alice",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.Equal(t, "alice", user.Login)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_DuplicateLogin(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("alice", "deadbeef", "Alice").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	_, err := repo.CreateUser(context.Background(), models.User{
		Login:        "alice",
		PasswordHash: "deadbeef",
		Name:         "Alice",
	})
	require.ErrorIs(t, err, ErrLoginAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByLogin(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	created := time.Now()
	mock.ExpectQuery(`SELECT user_id, login, password_hash, name, created_at`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "login", "password_hash", "name", "created_at"}).
			AddRow(int64(7), "alice", "deadbeef", "Alice", created))

	user, err := repo.FindUserByLogin(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByLogin_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT user_id, login, password_hash, name, created_at`).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "login", "password_hash", "name", "created_at"}))

	_, err := repo.FindUserByLogin(context.Background(), "nobody")
	require.ErrorIs(t, err, ErrNoUserWasFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
