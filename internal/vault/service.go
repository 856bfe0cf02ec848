package vault

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/mshevelev/vault-hub/internal/crypto"
	"github.com/mshevelev/vault-hub/internal/logger"
	"github.com/mshevelev/vault-hub/models"
)

type vaultService struct {
	profiles ProfileStore
	entries  EntryStore

	kdf    crypto.KeyDeriver
	hasher crypto.Fingerprinter
	engine crypto.CipherEngine

	session session

	// transitions serializes Setup/Unlock/Lock so two concurrent unlock
	// attempts cannot interleave their derive-compare-store sequences.
	transitions sync.Mutex

	cacheMu sync.Mutex
	cache   map[string]models.SecretPayload

	logger *logger.Logger
}

// NewVaultService wires the vault orchestrator from its collaborators.
func NewVaultService(
	profiles ProfileStore,
	entries EntryStore,
	kdf crypto.KeyDeriver,
	hasher crypto.Fingerprinter,
	engine crypto.CipherEngine,
	log *logger.Logger,
) VaultService {
	return &vaultService{
		profiles: profiles,
		entries:  entries,
		kdf:      kdf,
		hasher:   hasher,
		engine:   engine,
		cache:    make(map[string]models.SecretPayload),
		logger:   log,
	}
}

func (s *vaultService) Setup(ctx context.Context, ownerID int64, password string) error {
	s.transitions.Lock()
	defer s.transitions.Unlock()

	record, err := s.profiles.Get(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("load master-secret record: %w", err)
	}
	if !record.IsZero() {
		return ErrAlreadyConfigured
	}

	key, salt, err := s.deriveKey(ctx, password, nil)
	if err != nil {
		return err
	}

	fresh := models.MasterSecretRecord{
		Salt:             base64.StdEncoding.EncodeToString(salt),
		VerificationHash: s.hasher.Fingerprint(key),
	}
	if err := s.profiles.SetOnce(ctx, ownerID, fresh); err != nil {
		crypto.Zero(key)
		return fmt.Errorf("persist master-secret record: %w", err)
	}

	s.session.store(key)
	s.logger.Info().Int64("owner", ownerID).Msg("master password configured, session unlocked")

	return nil
}

func (s *vaultService) Unlock(ctx context.Context, ownerID int64, password string) error {
	s.transitions.Lock()
	defer s.transitions.Unlock()

	record, err := s.profiles.Get(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("load master-secret record: %w", err)
	}
	if record.IsZero() {
		return ErrNotConfigured
	}

	salt, err := base64.StdEncoding.DecodeString(record.Salt)
	if err != nil {
		return fmt.Errorf("decode stored salt: %w", err)
	}

	key, _, err := s.deriveKey(ctx, password, salt)
	if err != nil {
		return err
	}

	if !s.hasher.Matches(key, record.VerificationHash) {
		crypto.Zero(key)
		return ErrWrongPassword
	}

	s.session.store(key)
	s.logger.Info().Int64("owner", ownerID).Msg("session unlocked")

	return nil
}

func (s *vaultService) Lock() {
	s.transitions.Lock()
	defer s.transitions.Unlock()

	s.session.clear()

	s.cacheMu.Lock()
	s.cache = make(map[string]models.SecretPayload)
	s.cacheMu.Unlock()

	s.logger.Info().Msg("session locked")
}

func (s *vaultService) Unlocked() bool {
	return s.session.unlocked()
}

func (s *vaultService) CreateEntry(ctx context.Context, ownerID int64, payload models.SecretPayload) (models.VaultEntry, error) {
	var iv, ciphertext string
	err := s.session.withKey(func(key []byte) error {
		var encErr error
		iv, ciphertext, encErr = s.engine.Encrypt(key, payload)
		return encErr
	})
	if err != nil {
		return models.VaultEntry{}, err
	}

	entry, err := s.entries.Create(ctx, ownerID, iv, ciphertext)
	if err != nil {
		return models.VaultEntry{}, fmt.Errorf("persist vault entry: %w", err)
	}

	log := logger.FromContext(ctx)
	log.Debug().Str("entry", entry.ID).Msg("vault entry created")

	return entry, nil
}

func (s *vaultService) Reveal(ctx context.Context, entry models.VaultEntry) (models.SecretPayload, error) {
	if !s.session.unlocked() {
		return models.SecretPayload{}, ErrVaultLocked
	}

	s.cacheMu.Lock()
	cached, ok := s.cache[entry.ID]
	s.cacheMu.Unlock()
	if ok {
		return cached, nil
	}

	var payload models.SecretPayload
	err := s.session.withKey(func(key []byte) error {
		return s.engine.Decrypt(key, entry.IV, entry.Ciphertext, &payload)
	})
	if err != nil {
		return models.SecretPayload{}, err
	}

	s.cacheMu.Lock()
	s.cache[entry.ID] = payload
	s.cacheMu.Unlock()

	return payload, nil
}

func (s *vaultService) Entries(ctx context.Context, ownerID int64) ([]models.VaultEntry, error) {
	list, err := s.entries.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list vault entries: %w", err)
	}

	return list, nil
}

func (s *vaultService) Configured(ctx context.Context, ownerID int64) (bool, error) {
	record, err := s.profiles.Get(ctx, ownerID)
	if err != nil {
		return false, fmt.Errorf("load master-secret record: %w", err)
	}

	return !record.IsZero(), nil
}

// deriveKey runs the KDF off the calling goroutine so a cancelled context
// does not leave the caller waiting out the full iteration count. When the
// context wins the race, the abandoned key is wiped as soon as the KDF
// finishes.
func (s *vaultService) deriveKey(ctx context.Context, password string, salt []byte) ([]byte, []byte, error) {
	type derived struct {
		key  []byte
		salt []byte
		err  error
	}

	done := make(chan derived, 1)
	go func() {
		key, outSalt, err := s.kdf.Derive(password, salt)
		done <- derived{key: key, salt: outSalt, err: err}
	}()

	select {
	case <-ctx.Done():
		go func() {
			d := <-done
			crypto.Zero(d.key)
		}()
		return nil, nil, ctx.Err()
	case d := <-done:
		if d.err != nil {
			return nil, nil, fmt.Errorf("derive master key: %w", d.err)
		}
		return d.key, d.salt, nil
	}
}
