package config

import (
	"fmt"
	"time"
)

// ServerAppConfig is the server-specific view of the merged configuration.
type ServerAppConfig struct {
	// App contains authentication and token settings.
	App AppConfig
	// Storage contains the PostgreSQL connection settings.
	Storage StorageConfig
	// Server contains the HTTP listen settings.
	Server ServerConfig
}

// GetServerConfig builds and validates the server configuration view,
// applying defaults for fields no source provided.
func GetServerConfig() (*ServerAppConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerAppConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Server:  cfg.Server,
	}

	if serverCfg.App.TokenIssuer == "" {
		serverCfg.App.TokenIssuer = "vault-hub-server"
	}
	if serverCfg.App.TokenDuration == 0 {
		serverCfg.App.TokenDuration = 24 * time.Hour
	}
	if serverCfg.Server.HTTPAddress == "" {
		serverCfg.Server.HTTPAddress = "localhost:8080"
	}
	if serverCfg.Server.RequestTimeout == 0 {
		serverCfg.Server.RequestTimeout = 30 * time.Second
	}

	return serverCfg, serverCfg.validate()
}
