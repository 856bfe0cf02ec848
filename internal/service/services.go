package service

import (
	"github.com/mshevelev/vault-hub/internal/config"
	"github.com/mshevelev/vault-hub/internal/logger"
	"github.com/mshevelev/vault-hub/internal/store"
)

// Services bundles all server-side services for injection into the handler
// layer.
type Services struct {
	AuthService    AuthService
	ProfileService ProfileService
	EntryService   EntryService
}

func NewServices(repos *store.Repositories, cfg config.AppConfig, log *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(repos.UserRepository, cfg, log),
		ProfileService: NewProfileService(repos.ProfileRepository, log),
		EntryService:   NewEntryService(repos.EntryRepository, log),
	}
}
