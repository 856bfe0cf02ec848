package client

import (
	"context"
	"fmt"

	"github.com/mshevelev/vault-hub/internal/adapter"
	"github.com/mshevelev/vault-hub/internal/config"
	"github.com/mshevelev/vault-hub/internal/crypto"
	"github.com/mshevelev/vault-hub/internal/logger"
	"github.com/mshevelev/vault-hub/internal/store"
	"github.com/mshevelev/vault-hub/internal/tui"
	"github.com/mshevelev/vault-hub/internal/vault"
	"github.com/mshevelev/vault-hub/internal/workers"
)

// App bundles everything a running client needs: the terminal UI, the
// background sync worker and the local cache handle for shutdown.
type App struct {
	tui     *tui.TUI
	workers *workers.Workers
	cache   store.ClientCache
	logger  *logger.Logger
}

// NewApp assembles the client from configuration: HTTP adapter, local
// SQLite cache, vault core over cache-backed stores, background cache sync
// and the terminal UI.
func NewApp() (*App, error) {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("get client config: %w", err)
	}

	log := logger.NewClientLogger("client")

	server, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	cache, err := store.NewClientCache(cfg.Storage.CachePath, log)
	if err != nil {
		return nil, fmt.Errorf("open client cache: %w", err)
	}

	profiles := newCachedProfileStore(adapter.NewRemoteProfileStore(server), cache, log)
	entries := newCachedEntryStore(adapter.NewRemoteEntryStore(server), cache, log)

	vaultService := vault.NewVaultService(
		profiles,
		entries,
		crypto.NewKeyDeriver(),
		crypto.NewFingerprinter(),
		crypto.NewCipherEngine(),
		log,
	)

	ui, err := tui.New(vaultService, server, log)
	if err != nil {
		cache.Close()
		return nil, fmt.Errorf("create terminal UI: %w", err)
	}

	syncWorker := workers.NewCacheSyncWorker(server, cache, cfg.Workers.SyncInterval, log)

	return &App{
		tui:     ui,
		workers: workers.NewWorkers(syncWorker),
		cache:   cache,
		logger:  log,
	}, nil
}

// Run starts the background workers and blocks in the terminal UI until the
// user exits. The cache is closed and the workers stopped on the way out.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer a.cache.Close()

	a.workers.Run(ctx)

	return a.tui.Run(ctx)
}
