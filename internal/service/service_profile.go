package service

import (
	"context"
	"fmt"

	"github.com/mshevelev/vault-hub/internal/logger"
	"github.com/mshevelev/vault-hub/internal/store"
	"github.com/mshevelev/vault-hub/models"
)

// profileService is the concrete implementation of [ProfileService].
//
// The server treats the master-secret record as opaque: it validates shape
// (field lengths and encoding) but never uses the salt or hash for anything.
// Verification happens client-side, where the password lives.
type profileService struct {
	profileRepository store.ProfileRepository
	logger            *logger.Logger
}

func NewProfileService(profileRepository store.ProfileRepository, log *logger.Logger) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		logger:            log,
	}
}

// GetMasterSecret returns the user's record, zero-valued when the master
// password was never set.
func (p *profileService) GetMasterSecret(ctx context.Context, userID int64) (models.MasterSecretRecord, error) {
	log := logger.FromContext(ctx)

	record, err := p.profileRepository.GetMasterSecret(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user", userID).Msg("master secret lookup failed")
		return models.MasterSecretRecord{}, fmt.Errorf("master secret lookup failed: %w", err)
	}

	return record, nil
}

// SetMasterSecret stores the record for a user who has none yet. A second
// set attempt surfaces [store.ErrMasterSecretAlreadyExists] and leaves the
// stored record untouched: there is no master-password change operation.
func (p *profileService) SetMasterSecret(ctx context.Context, userID int64, record models.MasterSecretRecord) error {
	log := logger.FromContext(ctx)

	if err := validateMasterSecretRecord(record); err != nil {
		log.Err(err).Int64("user", userID).Msg("malformed master secret record")
		return err
	}

	if err := p.profileRepository.SetMasterSecretOnce(ctx, userID, record); err != nil {
		log.Err(err).Int64("user", userID).Msg("master secret store failed")
		return fmt.Errorf("master secret store failed: %w", err)
	}

	log.Info().Int64("user", userID).Msg("master secret record created")

	return nil
}
