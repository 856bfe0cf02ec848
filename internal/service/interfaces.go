package service

import (
	"context"

	"github.com/mshevelev/vault-hub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService handles account registration, credential verification and JWT
// lifecycle. Account passwords are unrelated to the vault master password
// and are hashed server-side with a keyed HMAC.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProfileService manages the write-once master-secret record. The server
// never derives, verifies or otherwise uses the record's contents; it only
// checks that the fields are well-formed before storing them.
type ProfileService interface {
	GetMasterSecret(ctx context.Context, userID int64) (models.MasterSecretRecord, error)
	SetMasterSecret(ctx context.Context, userID int64, record models.MasterSecretRecord) error
}

// EntryService stores and lists opaque encrypted vault entries on behalf of
// authenticated users.
type EntryService interface {
	CreateEntry(ctx context.Context, ownerID int64, iv, ciphertext string) (models.VaultEntry, error)
	ListEntries(ctx context.Context, ownerID int64) ([]models.VaultEntry, error)
}
