package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mshevelev/vault-hub/internal/logger"
)

func TestCreateEntry(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEntryRepository(db, logger.Nop())

	created := time.Now()
	mock.ExpectQuery(`INSERT INTO vault_entries`).
		WithArgs(sqlmock.AnyArg(), int64(7), "aXY=", "Y3Q=").
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "iv", "ciphertext", "created_at"}).
			AddRow("0198b2c6-0000-7000-8000-000000000001", int64(7), "aXY=", "Y3Q=", created))

	entry, err := repo.CreateEntry(context.Background(), 7, "aXY=", "Y3Q=")
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, int64(7), entry.OwnerID)
	assert.Equal(t, "aXY=", entry.IV)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEntriesByOwner_NewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEntryRepository(db, logger.Nop())

	older := time.Now().Add(-time.Hour)
	newer := time.Now()
	mock.ExpectQuery(`SELECT id, owner_id, iv, ciphertext, created_at FROM vault_entries WHERE owner_id = \$1 ORDER BY created_at DESC`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "iv", "ciphertext", "created_at"}).
			AddRow("id-2", int64(7), "aXYy", "Y3Qy", newer).
			AddRow("id-1", int64(7), "aXYx", "Y3Qx", older))

	entries, err := repo.ListEntriesByOwner(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "id-2", entries[0].ID)
	assert.Equal(t, "id-1", entries[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEntriesByOwner_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEntryRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT id, owner_id, iv, ciphertext, created_at FROM vault_entries`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "iv", "ciphertext", "created_at"}))

	entries, err := repo.ListEntriesByOwner(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NoError(t, mock.ExpectationsWereMet())
}
