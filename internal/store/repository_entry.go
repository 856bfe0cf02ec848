package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mshevelev/vault-hub/internal/logger"
	"github.com/mshevelev/vault-hub/internal/utils"
	"github.com/mshevelev/vault-hub/models"
)

// entryRepository is the PostgreSQL-backed implementation of
// [EntryRepository]. Queries are built with squirrel using PostgreSQL
// placeholders.
type entryRepository struct {
	db      *DB
	builder sq.StatementBuilderType
	ids     *utils.UUIDGenerator
	logger  *logger.Logger
}

func NewEntryRepository(db *DB, log *logger.Logger) EntryRepository {
	log.Debug().Msg("creating entry repository")
	return &entryRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		ids:     utils.NewUUIDGenerator(),
		logger:  log,
	}
}

func (r *entryRepository) CreateEntry(ctx context.Context, ownerID int64, iv, ciphertext string) (models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(models.VaultEntry{}.TableName()).
		Columns("id", "owner_id", "iv", "ciphertext").
		Values(r.ids.Generate(), ownerID, iv, ciphertext).
		Suffix("RETURNING id, owner_id, iv, ciphertext, created_at").
		ToSql()
	if err != nil {
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var entry models.VaultEntry
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&entry.ID, &entry.OwnerID, &entry.IV, &entry.Ciphertext, &entry.CreatedAt); err != nil {
		log.Err(err).Str("func", "*entryRepository.CreateEntry").Msg("error inserting vault entry")
		return models.VaultEntry{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return entry, nil
}

func (r *entryRepository) ListEntriesByOwner(ctx context.Context, ownerID int64) ([]models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("id", "owner_id", "iv", "ciphertext", "created_at").
		From(models.VaultEntry{}.TableName()).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.ListEntriesByOwner").Msg("error querying vault entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.VaultEntry, 0)
	for rows.Next() {
		var entry models.VaultEntry
		if err := rows.Scan(&entry.ID, &entry.OwnerID, &entry.IV, &entry.Ciphertext, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
