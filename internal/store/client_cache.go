package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mshevelev/vault-hub/internal/logger"
	"github.com/mshevelev/vault-hub/models"
)

// ClientCache is the client's local SQLite mirror of server-side state. It
// holds only what the server holds: the master-secret record and opaque
// (iv, ciphertext) entries. Nothing decryptable ever touches disk, so the
// cache is exactly as safe as the server database.
//
// The cache lets the client show the entry list and verify the master
// password without a round trip; decryption still requires the user-held
// password.
type ClientCache interface {
	ReplaceEntries(ctx context.Context, entries []models.VaultEntry) error
	Entries(ctx context.Context) ([]models.VaultEntry, error)

	SaveMasterSecret(ctx context.Context, record models.MasterSecretRecord) error
	MasterSecret(ctx context.Context) (models.MasterSecretRecord, error)

	Close() error
}

const (
	clientCacheSchema = `
		CREATE TABLE IF NOT EXISTS cached_entries (
			id         TEXT PRIMARY KEY,
			iv         TEXT NOT NULL,
			ciphertext TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		);
		CREATE TABLE IF NOT EXISTS cached_master_secret (
			singleton         INTEGER PRIMARY KEY CHECK (singleton = 1),
			salt              TEXT NOT NULL,
			verification_hash TEXT NOT NULL
		);`

	deleteCachedEntries = `DELETE FROM cached_entries`

	insertCachedEntry = `INSERT INTO cached_entries (id, iv, ciphertext, created_at)
		VALUES (?, ?, ?, ?)`

	selectCachedEntries = `SELECT id, iv, ciphertext, created_at
		FROM cached_entries
		ORDER BY created_at DESC`

	upsertCachedMasterSecret = `INSERT INTO cached_master_secret (singleton, salt, verification_hash)
		VALUES (1, ?, ?)
		ON CONFLICT (singleton) DO UPDATE SET
			salt = excluded.salt,
			verification_hash = excluded.verification_hash`

	selectCachedMasterSecret = `SELECT salt, verification_hash
		FROM cached_master_secret
		WHERE singleton = 1`
)

type clientCache struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewClientCache opens (or creates) the SQLite cache at path. An empty path
// selects an in-memory database, which is what tests use.
func NewClientCache(path string, log *logger.Logger) (ClientCache, error) {
	if path == "" {
		path = ":memory:"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open client cache: %w", err)
	}

	if _, err := db.Exec(clientCacheSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize client cache schema: %w", err)
	}

	log.Debug().Str("path", path).Msg("client cache opened")

	return &clientCache{db: db, logger: log}, nil
}

// ReplaceEntries atomically swaps the cached list for the given one, so a
// partially applied refresh can never be observed.
func (c *clientCache) ReplaceEntries(ctx context.Context, entries []models.VaultEntry) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin cache transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteCachedEntries); err != nil {
		return fmt.Errorf("clear cached entries: %w", err)
	}

	for _, entry := range entries {
		if _, err := tx.ExecContext(ctx, insertCachedEntry, entry.ID, entry.IV, entry.Ciphertext, entry.CreatedAt); err != nil {
			return fmt.Errorf("insert cached entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit cache transaction: %w", err)
	}

	return nil
}

func (c *clientCache) Entries(ctx context.Context) ([]models.VaultEntry, error) {
	rows, err := c.db.QueryContext(ctx, selectCachedEntries)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.VaultEntry, 0)
	for rows.Next() {
		var entry models.VaultEntry
		if err := rows.Scan(&entry.ID, &entry.IV, &entry.Ciphertext, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (c *clientCache) SaveMasterSecret(ctx context.Context, record models.MasterSecretRecord) error {
	if _, err := c.db.ExecContext(ctx, upsertCachedMasterSecret, record.Salt, record.VerificationHash); err != nil {
		return fmt.Errorf("save cached master secret: %w", err)
	}

	return nil
}

func (c *clientCache) MasterSecret(ctx context.Context) (models.MasterSecretRecord, error) {
	row := c.db.QueryRowContext(ctx, selectCachedMasterSecret)

	var record models.MasterSecretRecord
	if err := row.Scan(&record.Salt, &record.VerificationHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MasterSecretRecord{}, nil
		}
		return models.MasterSecretRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return record, nil
}

func (c *clientCache) Close() error {
	return c.db.Close()
}
