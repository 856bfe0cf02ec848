package client

import (
	"context"

	"github.com/mshevelev/vault-hub/internal/logger"
	"github.com/mshevelev/vault-hub/internal/store"
	"github.com/mshevelev/vault-hub/internal/vault"
	"github.com/mshevelev/vault-hub/models"
)

// cachedProfileStore layers the local cache under a remote profile store.
// Reads fall back to the cache when the server is unreachable, so the master
// password can still be verified offline. Writes always go to the server:
// the write-once record must be created there first.
type cachedProfileStore struct {
	remote vault.ProfileStore
	cache  store.ClientCache
	logger *logger.Logger
}

func newCachedProfileStore(remote vault.ProfileStore, cache store.ClientCache, log *logger.Logger) vault.ProfileStore {
	return &cachedProfileStore{remote: remote, cache: cache, logger: log}
}

func (s *cachedProfileStore) Get(ctx context.Context, ownerID int64) (models.MasterSecretRecord, error) {
	record, err := s.remote.Get(ctx, ownerID)
	if err != nil {
		s.logger.Err(err).Msg("remote master secret unavailable, reading cache")
		return s.cache.MasterSecret(ctx)
	}

	if !record.IsZero() {
		if cacheErr := s.cache.SaveMasterSecret(ctx, record); cacheErr != nil {
			s.logger.Err(cacheErr).Msg("caching master secret failed")
		}
	}

	return record, nil
}

func (s *cachedProfileStore) SetOnce(ctx context.Context, ownerID int64, record models.MasterSecretRecord) error {
	if err := s.remote.SetOnce(ctx, ownerID, record); err != nil {
		return err
	}

	if cacheErr := s.cache.SaveMasterSecret(ctx, record); cacheErr != nil {
		s.logger.Err(cacheErr).Msg("caching master secret failed")
	}

	return nil
}

// cachedEntryStore layers the local cache under a remote entry store.
// Listing falls back to the last mirrored snapshot when the server is
// unreachable; creating entries requires connectivity.
type cachedEntryStore struct {
	remote vault.EntryStore
	cache  store.ClientCache
	logger *logger.Logger
}

func newCachedEntryStore(remote vault.EntryStore, cache store.ClientCache, log *logger.Logger) vault.EntryStore {
	return &cachedEntryStore{remote: remote, cache: cache, logger: log}
}

func (s *cachedEntryStore) Create(ctx context.Context, ownerID int64, iv, ciphertext string) (models.VaultEntry, error) {
	return s.remote.Create(ctx, ownerID, iv, ciphertext)
}

func (s *cachedEntryStore) ListByOwner(ctx context.Context, ownerID int64) ([]models.VaultEntry, error) {
	entries, err := s.remote.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Err(err).Msg("remote entry list unavailable, reading cache")
		return s.cache.Entries(ctx)
	}

	if cacheErr := s.cache.ReplaceEntries(ctx, entries); cacheErr != nil {
		s.logger.Err(cacheErr).Msg("caching entry list failed")
	}

	return entries, nil
}
