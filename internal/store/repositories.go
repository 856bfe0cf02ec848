package store

import "github.com/mshevelev/vault-hub/internal/logger"

// Repositories bundles all PostgreSQL-backed repositories behind their
// interfaces for injection into the service layer.
type Repositories struct {
	UserRepository    UserRepository
	ProfileRepository ProfileRepository
	EntryRepository   EntryRepository
}

func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db, log),
		ProfileRepository: NewProfileRepository(db, log),
		EntryRepository:   NewEntryRepository(db, log),
	}
}
