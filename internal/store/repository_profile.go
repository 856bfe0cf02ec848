package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mshevelev/vault-hub/internal/logger"
	"github.com/mshevelev/vault-hub/models"
)

// profileRepository is the PostgreSQL-backed implementation of
// [ProfileRepository].
//
// Write-once semantics are layered: the INSERT uses ON CONFLICT DO NOTHING
// so a concurrent first write loses cleanly, and the profiles table carries
// a trigger that rejects any UPDATE of a populated record, so no code path
// can mutate a stored master secret.
type profileRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewProfileRepository(db *DB, log *logger.Logger) ProfileRepository {
	log.Debug().Msg("creating profile repository")
	return &profileRepository{db: db, logger: log}
}

func (r *profileRepository) GetMasterSecret(ctx context.Context, userID int64) (models.MasterSecretRecord, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getMasterSecret, userID)

	var record models.MasterSecretRecord
	if err := row.Scan(&record.Salt, &record.VerificationHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Absent record means the master password was never set.
			return models.MasterSecretRecord{}, nil
		}

		log.Err(err).Str("func", "*profileRepository.GetMasterSecret").Msg("error querying master secret")
		return models.MasterSecretRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return record, nil
}

func (r *profileRepository) SetMasterSecretOnce(ctx context.Context, userID int64, record models.MasterSecretRecord) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, insertMasterSecretOnce, userID, record.Salt, record.VerificationHash)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.SetMasterSecretOnce").Msg("error inserting master secret")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrMasterSecretAlreadyExists
	}

	return nil
}
