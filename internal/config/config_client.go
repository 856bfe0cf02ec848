package config

import (
	"fmt"
	"time"
)

// ClientAdapterConfig holds the network settings used by the client
// transport layer.
type ClientAdapterConfig struct {
	// HTTPAddress is the server endpoint the client talks to.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientStorageConfig groups the client's local storage settings.
type ClientStorageConfig struct {
	// CachePath is the SQLite file holding the local ciphertext cache.
	// Empty selects an in-memory cache.
	CachePath string
}

// ClientWorkersConfig holds the client background worker settings.
type ClientWorkersConfig struct {
	// SyncInterval is how often the cache sync worker runs.
	SyncInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains server endpoint settings.
	Adapter ClientAdapterConfig
	// Storage contains local cache settings.
	Storage ClientStorageConfig
	// Workers contains background job settings.
	Workers ClientWorkersConfig
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration, applying defaults for fields no
// source provided.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapterConfig{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorageConfig{
			CachePath: cfg.Storage.Cache.Path,
		},
		Workers: ClientWorkersConfig{
			SyncInterval: cfg.Workers.SyncInterval,
		},
	}

	if clientCfg.Adapter.HTTPAddress == "" {
		clientCfg.Adapter.HTTPAddress = "localhost:8080"
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = 30 * time.Second
	}
	if clientCfg.Workers.SyncInterval == 0 {
		clientCfg.Workers.SyncInterval = time.Minute
	}

	return clientCfg, clientCfg.validate()
}
