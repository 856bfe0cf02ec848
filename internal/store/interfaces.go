package store

import (
	"context"

	"github.com/mshevelev/vault-hub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists hub accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// ProfileRepository persists the write-once master-secret record. The
// database enforces immutability with a trigger, so even a buggy caller
// cannot overwrite an existing record.
type ProfileRepository interface {
	// GetMasterSecret returns the user's record, or a zero-value record and
	// a nil error when none has been set yet.
	GetMasterSecret(ctx context.Context, userID int64) (models.MasterSecretRecord, error)

	// SetMasterSecretOnce inserts the record if the user has none. Returns
	// [ErrMasterSecretAlreadyExists] otherwise, leaving the stored record
	// untouched.
	SetMasterSecretOnce(ctx context.Context, userID int64, record models.MasterSecretRecord) error
}

// EntryRepository persists opaque encrypted vault entries.
type EntryRepository interface {
	// CreateEntry inserts a new entry and returns it with ID and CreatedAt
	// assigned.
	CreateEntry(ctx context.Context, ownerID int64, iv, ciphertext string) (models.VaultEntry, error)

	// ListEntriesByOwner returns the owner's entries newest first.
	ListEntriesByOwner(ctx context.Context, ownerID int64) ([]models.VaultEntry, error)
}
