package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/mshevelev/vault-hub/internal/config"
	"github.com/mshevelev/vault-hub/internal/logger"
	"github.com/mshevelev/vault-hub/internal/store"
	"github.com/mshevelev/vault-hub/internal/utils"
	"github.com/mshevelev/vault-hub/models"
)

// authService is the concrete implementation of [AuthService]. It hashes
// account passwords with HMAC-SHA256 before storage or comparison and never
// persists them in plain text.
type authService struct {
	userRepository store.UserRepository

	// hashKey is the HMAC secret for password hashing. Must match the value
	// used at registration time.
	hashKey string

	// tokenSignKey signs and verifies JWTs; tokenIssuer is the "iss" claim
	// stamped into and required of every token.
	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given repository
// and populated with security parameters from cfg. The returned service is
// safe for concurrent use; all state is read-only after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.AppConfig, log *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hashKey:        cfg.PasswordHashKey,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         log,
	}
}

// RegisterUser creates a new account. The plain password in user.Password is
// hashed and discarded before the repository sees the record.
//
// Returns [ErrInvalidDataProvided] for an empty login or password, or a
// wrapped storage error (see [store.ErrLoginAlreadyExists]).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Login == "" || user.Password == "" {
		log.Error().Str("login", user.Login).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	a.hashPassword(&user)

	registered, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registered, nil
}

// Login authenticates an existing account by comparing password hashes in
// constant time.
//
// Returns [ErrInvalidDataProvided] for empty credentials, a wrapped storage
// error when the lookup fails (see [store.ErrNoUserWasFound]), or
// [ErrWrongPassword] on hash mismatch.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Login == "" || user.Password == "" {
		log.Error().Str("login", user.Login).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	a.hashPassword(&user)

	found, err := a.userRepository.FindUserByLogin(ctx, user.Login)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(found.PasswordHash), []byte(user.PasswordHash)) != 1 {
		log.Error().Int64("id", found.UserID).Str("login", found.Login).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return found, nil
}

// CreateToken issues a signed JWT for the given user, carrying the
// configured issuer and expiring after the configured duration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// (expired, wrong issuer, malformed) is normalised to
// [ErrTokenIsExpiredOrInvalid] so callers need not inspect low-level JWT
// errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// hashPassword replaces the plain-text password in user with its
// HMAC-SHA256 hash and clears the plain text.
func (a *authService) hashPassword(user *models.User) {
	user.PasswordHash = utils.HashString(user.Password, a.hashKey)
	user.Password = ""
}
