package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/mshevelev/vault-hub/internal/vault"
	"github.com/mshevelev/vault-hub/models"
)

// remoteProfileStore exposes the server's master-secret endpoints through the
// [vault.ProfileStore] contract.
type remoteProfileStore struct {
	server ServerAdapter
}

// NewRemoteProfileStore wraps server in a [vault.ProfileStore]. The ownerID
// arguments are ignored by the HTTP transport: the server infers the owner
// from the bearer token.
func NewRemoteProfileStore(server ServerAdapter) vault.ProfileStore {
	return &remoteProfileStore{server: server}
}

func (s *remoteProfileStore) Get(ctx context.Context, _ int64) (models.MasterSecretRecord, error) {
	record, err := s.server.GetMasterSecret(ctx)
	if errors.Is(err, ErrNotFound) {
		return models.MasterSecretRecord{}, nil
	}
	if err != nil {
		return models.MasterSecretRecord{}, fmt.Errorf("fetch master secret: %w", err)
	}

	return record, nil
}

func (s *remoteProfileStore) SetOnce(ctx context.Context, _ int64, record models.MasterSecretRecord) error {
	err := s.server.SetMasterSecret(ctx, record)
	if errors.Is(err, ErrConflict) {
		return vault.ErrAlreadyConfigured
	}
	if err != nil {
		return fmt.Errorf("store master secret: %w", err)
	}

	return nil
}

// remoteEntryStore exposes the server's vault-entry endpoints through the
// [vault.EntryStore] contract.
type remoteEntryStore struct {
	server ServerAdapter
}

// NewRemoteEntryStore wraps server in a [vault.EntryStore].
func NewRemoteEntryStore(server ServerAdapter) vault.EntryStore {
	return &remoteEntryStore{server: server}
}

func (s *remoteEntryStore) Create(ctx context.Context, _ int64, iv, ciphertext string) (models.VaultEntry, error) {
	created, err := s.server.CreateEntry(ctx, models.VaultEntry{IV: iv, Ciphertext: ciphertext})
	if err != nil {
		return models.VaultEntry{}, fmt.Errorf("upload vault entry: %w", err)
	}

	return created, nil
}

func (s *remoteEntryStore) ListByOwner(ctx context.Context, _ int64) ([]models.VaultEntry, error) {
	entries, err := s.server.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch vault entries: %w", err)
	}

	return entries, nil
}
