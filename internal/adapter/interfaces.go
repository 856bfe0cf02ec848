// Package adapter provides transport-layer abstractions for communicating
// with the vault-hub server.
//
// The primary abstraction is [ServerAdapter], which decouples the client core
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/mshevelev/vault-hub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the vault-hub
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new hub account. On success the bearer token from
	// the Authorization response header is stored via SetToken and the user
	// id is extracted from the token subject. Returns [ErrConflict] (wrapped)
	// if the login is already taken.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates an existing hub account. On success the bearer
	// token is stored via SetToken. Returns [ErrUnauthorized] (wrapped) on
	// bad credentials.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// GetMasterSecret fetches the caller's master-secret record. Returns
	// [ErrNotFound] (wrapped) if no master password has been configured yet.
	// Requires a valid bearer token.
	GetMasterSecret(ctx context.Context) (models.MasterSecretRecord, error)

	// SetMasterSecret stores the caller's master-secret record, exactly
	// once. Returns [ErrConflict] (wrapped) if a record already exists.
	// Requires a valid bearer token.
	SetMasterSecret(ctx context.Context, record models.MasterSecretRecord) error

	// CreateEntry uploads an opaque (iv, ciphertext) pair and returns the
	// stored entry with server-assigned ID and CreatedAt. Requires a valid
	// bearer token.
	CreateEntry(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error)

	// ListEntries fetches all of the caller's encrypted entries, newest
	// first. Requires a valid bearer token.
	ListEntries(ctx context.Context) ([]models.VaultEntry, error)
}
