package service

import (
	"context"
	"fmt"

	"github.com/mshevelev/vault-hub/internal/logger"
	"github.com/mshevelev/vault-hub/internal/store"
	"github.com/mshevelev/vault-hub/models"
)

// entryService is the concrete implementation of [EntryService]. Entries
// pass through as opaque (iv, ciphertext) pairs; the service only checks
// their shape before persisting.
type entryService struct {
	entryRepository store.EntryRepository
	logger          *logger.Logger
}

func NewEntryService(entryRepository store.EntryRepository, log *logger.Logger) EntryService {
	return &entryService{
		entryRepository: entryRepository,
		logger:          log,
	}
}

// CreateEntry persists a new encrypted entry for ownerID and returns it
// with server-assigned ID and CreatedAt.
//
// Returns [ErrInvalidEntry] when the IV or ciphertext is malformed.
func (s *entryService) CreateEntry(ctx context.Context, ownerID int64, iv, ciphertext string) (models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	if err := validateEntryPayload(iv, ciphertext); err != nil {
		log.Err(err).Int64("owner", ownerID).Msg("malformed vault entry")
		return models.VaultEntry{}, err
	}

	entry, err := s.entryRepository.CreateEntry(ctx, ownerID, iv, ciphertext)
	if err != nil {
		log.Err(err).Int64("owner", ownerID).Msg("vault entry store failed")
		return models.VaultEntry{}, fmt.Errorf("vault entry store failed: %w", err)
	}

	log.Debug().Int64("owner", ownerID).Str("entry", entry.ID).Msg("vault entry created")

	return entry, nil
}

// ListEntries returns the owner's entries newest first.
func (s *entryService) ListEntries(ctx context.Context, ownerID int64) ([]models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	entries, err := s.entryRepository.ListEntriesByOwner(ctx, ownerID)
	if err != nil {
		log.Err(err).Int64("owner", ownerID).Msg("vault entry listing failed")
		return nil, fmt.Errorf("vault entry listing failed: %w", err)
	}

	return entries, nil
}
