package config

// validate checks the merged config for use by the server. The client
// builds its own view via [GetClientConfig], which applies client-specific
// rules, so only server-critical fields are checked here.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ServerAppConfig) validate() error {
	if cfg.App.PasswordHashKey == "" || cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration == 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
