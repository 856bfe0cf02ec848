package vault

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_stores_mock.go -package=mock

import (
	"context"

	"github.com/mshevelev/vault-hub/models"
)

// ProfileStore persists the single write-once master-secret record per owner.
//
// The vault core enforces write-once semantics itself; implementations
// must also enforce them at the storage layer.
type ProfileStore interface {
	// Get returns the owner's master-secret record. An owner who has never
	// set a master password yields a zero-value record and a nil error.
	Get(ctx context.Context, ownerID int64) (models.MasterSecretRecord, error)

	// SetOnce persists the record for an owner who has none yet. If a record
	// already exists it is left untouched and [ErrAlreadyConfigured] is
	// returned.
	SetOnce(ctx context.Context, ownerID int64, record models.MasterSecretRecord) error
}

// EntryStore persists opaque (iv, ciphertext) records keyed by owner. It has
// no decryption capability and never inspects content.
type EntryStore interface {
	// Create persists a new entry and returns it with server-assigned
	// fields (ID, CreatedAt) populated.
	Create(ctx context.Context, ownerID int64, iv, ciphertext string) (models.VaultEntry, error)

	// ListByOwner returns all of the owner's entries, newest first.
	ListByOwner(ctx context.Context, ownerID int64) ([]models.VaultEntry, error)
}

// VaultService is the client-side orchestrator of the zero-knowledge vault.
//
// The session starts Locked. Setup and Unlock transition to Unlocked on
// success; Lock transitions back and wipes the in-memory key together with
// any cached decrypted payloads. CreateEntry and Reveal are the only
// operations that touch ciphertext and both require Unlocked.
//
// There is no change-password operation: once set, the master password can
// never be changed or recovered, and losing it makes every entry permanently
// unreadable.
type VaultService interface {
	// Setup derives a fresh key and salt from password, persists
	// (salt, fingerprint) via the ProfileStore and unlocks the session.
	// Returns [ErrAlreadyConfigured] if a master password is already set;
	// the existing record is never overwritten.
	Setup(ctx context.Context, ownerID int64, password string) error

	// Unlock re-derives the key with the stored salt and compares its
	// fingerprint to the stored one. On mismatch the session stays Locked
	// and [ErrWrongPassword] is returned. Returns [ErrNotConfigured] if no
	// master password has been set yet.
	Unlock(ctx context.Context, ownerID int64, password string) error

	// Lock discards the in-memory key immediately and clears the decrypted
	// entry cache. Safe to call when already locked.
	Lock()

	// Unlocked reports whether the session currently holds a key.
	Unlocked() bool

	// CreateEntry encrypts payload under the session key and persists the
	// resulting (iv, ciphertext) pair. Requires Unlocked.
	CreateEntry(ctx context.Context, ownerID int64, payload models.SecretPayload) (models.VaultEntry, error)

	// Reveal decrypts an entry. Requires Unlocked. Results are cached per
	// entry id for the life of the unlocked session, so revealing the same
	// entry twice decrypts once. [crypto.ErrAuthenticationFailed] means
	// wrong master password or a corrupted record; the two cases cannot be
	// told apart.
	Reveal(ctx context.Context, entry models.VaultEntry) (models.SecretPayload, error)

	// Entries lists the owner's encrypted entries, newest first. The list
	// contains only opaque ciphertext and is available while Locked.
	Entries(ctx context.Context, ownerID int64) ([]models.VaultEntry, error)

	// Configured reports whether a master-secret record exists for owner.
	Configured(ctx context.Context, ownerID int64) (bool, error)
}
