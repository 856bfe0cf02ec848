package vault

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mshevelev/vault-hub/internal/crypto"
	"github.com/mshevelev/vault-hub/internal/logger"
	"github.com/mshevelev/vault-hub/internal/mock"
	"github.com/mshevelev/vault-hub/models"
)

const testOwnerID int64 = 7

type vaultFixture struct {
	profiles *mock.MockProfileStore
	entries  *mock.MockEntryStore
	service  VaultService
}

func newVaultFixture(t *testing.T) *vaultFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	profiles := mock.NewMockProfileStore(ctrl)
	entries := mock.NewMockEntryStore(ctrl)

	service := NewVaultService(
		profiles,
		entries,
		crypto.NewKeyDeriver(),
		crypto.NewFingerprinter(),
		crypto.NewCipherEngine(),
		logger.Nop(),
	)

	return &vaultFixture{profiles: profiles, entries: entries, service: service}
}

// configuredRecord derives a real record for password so Unlock can be
// exercised against genuine KDF output.
func configuredRecord(t *testing.T, password string) models.MasterSecretRecord {
	t.Helper()

	kdf := crypto.NewKeyDeriver()
	key, salt, err := kdf.Derive(password, nil)
	require.NoError(t, err)

	return models.MasterSecretRecord{
		Salt:             base64.StdEncoding.EncodeToString(salt),
		VerificationHash: crypto.NewFingerprinter().Fingerprint(key),
	}
}

func TestSetup_FreshProfileUnlocksSession(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()

	var saved models.MasterSecretRecord
	f.profiles.EXPECT().Get(ctx, testOwnerID).Return(models.MasterSecretRecord{}, nil)
	f.profiles.EXPECT().
		SetOnce(ctx, testOwnerID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, record models.MasterSecretRecord) error {
			saved = record
			return nil
		})

	require.NoError(t, f.service.Setup(ctx, testOwnerID, "correct-horse"))
	assert.True(t, f.service.Unlocked())

	salt, err := base64.StdEncoding.DecodeString(saved.Salt)
	require.NoError(t, err)
	assert.Len(t, salt, crypto.SaltSize)

	// The stored hash must verify the key derived from the same password
	// and salt.
	key, _, err := crypto.NewKeyDeriver().Derive("correct-horse", salt)
	require.NoError(t, err)
	assert.True(t, crypto.NewFingerprinter().Matches(key, saved.VerificationHash))
}

func TestSetup_AlreadyConfiguredIsRejected(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()

	f.profiles.EXPECT().
		Get(ctx, testOwnerID).
		Return(configuredRecord(t, "original"), nil)

	err := f.service.Setup(ctx, testOwnerID, "replacement")
	require.ErrorIs(t, err, ErrAlreadyConfigured)
	assert.False(t, f.service.Unlocked())
}

func TestSetup_ConcurrentWriterWinsRace(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()

	f.profiles.EXPECT().Get(ctx, testOwnerID).Return(models.MasterSecretRecord{}, nil)
	f.profiles.EXPECT().
		SetOnce(ctx, testOwnerID, gomock.Any()).
		Return(ErrAlreadyConfigured)

	err := f.service.Setup(ctx, testOwnerID, "too-late")
	require.ErrorIs(t, err, ErrAlreadyConfigured)
	assert.False(t, f.service.Unlocked())
}

func TestUnlock_CorrectPassword(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()

	f.profiles.EXPECT().
		Get(ctx, testOwnerID).
		Return(configuredRecord(t, "correct-horse"), nil)

	require.NoError(t, f.service.Unlock(ctx, testOwnerID, "correct-horse"))
	assert.True(t, f.service.Unlocked())
}

func TestUnlock_WrongPasswordStaysLocked(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()

	f.profiles.EXPECT().
		Get(ctx, testOwnerID).
		Return(configuredRecord(t, "correct-horse"), nil)

	err := f.service.Unlock(ctx, testOwnerID, "wrong-horse")
	require.ErrorIs(t, err, ErrWrongPassword)
	assert.False(t, f.service.Unlocked())
}

func TestUnlock_NotConfigured(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()

	f.profiles.EXPECT().Get(ctx, testOwnerID).Return(models.MasterSecretRecord{}, nil)

	err := f.service.Unlock(ctx, testOwnerID, "anything")
	require.ErrorIs(t, err, ErrNotConfigured)
	assert.False(t, f.service.Unlocked())
}

func TestSetup_CancelledContext(t *testing.T) {
	f := newVaultFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f.profiles.EXPECT().Get(ctx, testOwnerID).Return(models.MasterSecretRecord{}, nil)

	err := f.service.Setup(ctx, testOwnerID, "correct-horse")
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, f.service.Unlocked())
}

func TestCreateEntry_WhileLockedWritesNothing(t *testing.T) {
	f := newVaultFixture(t)

	// No EXPECT on the entry store: a locked session must not reach it.
	_, err := f.service.CreateEntry(context.Background(), testOwnerID, models.SecretPayload{
		Label:  "bank",
		Secret: "p@ss",
	})
	require.ErrorIs(t, err, ErrVaultLocked)
}

func TestCreateEntry_RoundTripThroughReveal(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()

	f.profiles.EXPECT().
		Get(ctx, testOwnerID).
		Return(configuredRecord(t, "correct-horse"), nil)
	require.NoError(t, f.service.Unlock(ctx, testOwnerID, "correct-horse"))

	payload := models.SecretPayload{
		Label:    "bank",
		URL:      "https://bank.example",
		Username: "alice",
		Secret:   "p@ss",
	}

	f.entries.EXPECT().
		Create(ctx, testOwnerID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, iv, ciphertext string) (models.VaultEntry, error) {
			return models.VaultEntry{
				ID:         uuid.NewString(),
				OwnerID:    testOwnerID,
				IV:         iv,
				Ciphertext: ciphertext,
			}, nil
		})

	entry, err := f.service.CreateEntry(ctx, testOwnerID, payload)
	require.NoError(t, err)
	assert.NotEmpty(t, entry.IV)
	assert.NotEmpty(t, entry.Ciphertext)
	assert.NotEqual(t, payload.Secret, entry.Ciphertext)

	got, err := f.service.Reveal(ctx, entry)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestReveal_WhileLocked(t *testing.T) {
	f := newVaultFixture(t)

	_, err := f.service.Reveal(context.Background(), models.VaultEntry{ID: uuid.NewString()})
	require.ErrorIs(t, err, ErrVaultLocked)
}

func TestReveal_TamperedEntryFailsAuthentication(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()

	f.profiles.EXPECT().
		Get(ctx, testOwnerID).
		Return(configuredRecord(t, "correct-horse"), nil)
	require.NoError(t, f.service.Unlock(ctx, testOwnerID, "correct-horse"))

	_, err := f.service.Reveal(ctx, models.VaultEntry{
		ID:         uuid.NewString(),
		IV:         base64.StdEncoding.EncodeToString(make([]byte, crypto.IVSize)),
		Ciphertext: base64.StdEncoding.EncodeToString([]byte("definitely not sealed by this key")),
	})
	require.ErrorIs(t, err, crypto.ErrAuthenticationFailed)
}

func TestReveal_CachesPerEntryAndLockClearsCache(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()

	f.profiles.EXPECT().
		Get(ctx, testOwnerID).
		Return(configuredRecord(t, "correct-horse"), nil).
		Times(2)
	require.NoError(t, f.service.Unlock(ctx, testOwnerID, "correct-horse"))

	payload := models.SecretPayload{Label: "bank", Secret: "p@ss"}
	f.entries.EXPECT().
		Create(ctx, testOwnerID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, iv, ciphertext string) (models.VaultEntry, error) {
			return models.VaultEntry{ID: uuid.NewString(), IV: iv, Ciphertext: ciphertext}, nil
		})

	entry, err := f.service.CreateEntry(ctx, testOwnerID, payload)
	require.NoError(t, err)

	got, err := f.service.Reveal(ctx, entry)
	require.NoError(t, err)
	require.Equal(t, payload, got)

	// Same id with garbage ciphertext: a cache hit never touches the
	// cipher, so the tampered bytes go unnoticed.
	tampered := entry
	tampered.Ciphertext = base64.StdEncoding.EncodeToString([]byte("garbage"))
	got, err = f.service.Reveal(ctx, tampered)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	// After lock + re-unlock the cache is gone and the tampered entry is
	// actually decrypted, which fails the tag check.
	f.service.Lock()
	require.NoError(t, f.service.Unlock(ctx, testOwnerID, "correct-horse"))

	_, err = f.service.Reveal(ctx, tampered)
	require.ErrorIs(t, err, crypto.ErrAuthenticationFailed)
}

func TestEntries_AvailableWhileLocked(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()

	want := []models.VaultEntry{
		{ID: uuid.NewString(), OwnerID: testOwnerID, IV: "aXY=", Ciphertext: "Y3Q="},
	}
	f.entries.EXPECT().ListByOwner(ctx, testOwnerID).Return(want, nil)

	got, err := f.service.Entries(ctx, testOwnerID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEntries_StoreErrorIsWrapped(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()

	storeErr := errors.New("connection refused")
	f.entries.EXPECT().ListByOwner(ctx, testOwnerID).Return(nil, storeErr)

	_, err := f.service.Entries(ctx, testOwnerID)
	require.ErrorIs(t, err, storeErr)
}

func TestConfigured(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()

	f.profiles.EXPECT().Get(ctx, testOwnerID).Return(models.MasterSecretRecord{}, nil)
	ok, err := f.service.Configured(ctx, testOwnerID)
	require.NoError(t, err)
	assert.False(t, ok)

	f.profiles.EXPECT().
		Get(ctx, testOwnerID).
		Return(configuredRecord(t, "correct-horse"), nil)
	ok, err = f.service.Configured(ctx, testOwnerID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLock_WhileAlreadyLocked(t *testing.T) {
	f := newVaultFixture(t)

	f.service.Lock()
	f.service.Lock()
	assert.False(t, f.service.Unlocked())
}
