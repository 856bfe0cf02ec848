package workers

import (
	"context"
	"errors"
	"time"

	"github.com/mshevelev/vault-hub/internal/adapter"
	"github.com/mshevelev/vault-hub/internal/logger"
	"github.com/mshevelev/vault-hub/internal/store"
)

// cacheSyncWorker periodically mirrors the server's ciphertext state into the
// local cache so entry listing and master-password verification keep working
// offline. Only data the server already holds is cached; nothing decryptable
// ever reaches disk.
type cacheSyncWorker struct {
	server   adapter.ServerAdapter
	cache    store.ClientCache
	interval time.Duration

	logger *logger.Logger
}

// NewCacheSyncWorker builds a worker that refreshes cache from server every
// interval.
func NewCacheSyncWorker(server adapter.ServerAdapter, cache store.ClientCache, interval time.Duration, log *logger.Logger) Worker {
	return &cacheSyncWorker{server: server, cache: cache, interval: interval, logger: log}
}

// Run performs an immediate sync and then one per tick until ctx is
// cancelled. Sync failures are logged and retried on the next tick; a client
// that is offline or not yet authenticated simply keeps its last good cache.
func (w *cacheSyncWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.syncOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("cache sync worker stopped")
			return
		case <-ticker.C:
			w.syncOnce(ctx)
		}
	}
}

func (w *cacheSyncWorker) syncOnce(ctx context.Context) {
	if w.server.Token() == "" {
		return
	}

	entries, err := w.server.ListEntries(ctx)
	if err != nil {
		w.logger.Err(err).Msg("cache sync: list entries")
		return
	}
	if err = w.cache.ReplaceEntries(ctx, entries); err != nil {
		w.logger.Err(err).Msg("cache sync: replace cached entries")
		return
	}

	record, err := w.server.GetMasterSecret(ctx)
	switch {
	case errors.Is(err, adapter.ErrNotFound):
		// No master password configured yet. Nothing to mirror.
	case err != nil:
		w.logger.Err(err).Msg("cache sync: get master secret")
		return
	default:
		if err = w.cache.SaveMasterSecret(ctx, record); err != nil {
			w.logger.Err(err).Msg("cache sync: save master secret")
			return
		}
	}

	w.logger.Debug().Int("entries", len(entries)).Msg("cache sync completed")
}
