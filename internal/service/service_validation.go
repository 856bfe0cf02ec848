package service

import (
	"encoding/base64"
	"fmt"

	"github.com/mshevelev/vault-hub/internal/crypto"
	"github.com/mshevelev/vault-hub/models"
)

// validateMasterSecretRecord checks that both fields are std-base64 and
// decode to the expected sizes: 16-byte salt, 32-byte SHA-256 digest. The
// server cannot check anything deeper without the user's password, and does
// not try to.
func validateMasterSecretRecord(record models.MasterSecretRecord) error {
	salt, err := base64.StdEncoding.DecodeString(record.Salt)
	if err != nil {
		return fmt.Errorf("%w: salt is not valid base64", ErrInvalidMasterSecret)
	}
	if len(salt) != crypto.SaltSize {
		return fmt.Errorf("%w: salt must decode to %d bytes", ErrInvalidMasterSecret, crypto.SaltSize)
	}

	hash, err := base64.StdEncoding.DecodeString(record.VerificationHash)
	if err != nil {
		return fmt.Errorf("%w: verification hash is not valid base64", ErrInvalidMasterSecret)
	}
	if len(hash) != crypto.KeySize {
		return fmt.Errorf("%w: verification hash must decode to %d bytes", ErrInvalidMasterSecret, crypto.KeySize)
	}

	return nil
}

// validateEntryPayload checks that the IV decodes to the AES-GCM nonce size
// and the ciphertext carries at least the authentication tag.
func validateEntryPayload(iv, ciphertext string) error {
	rawIV, err := base64.StdEncoding.DecodeString(iv)
	if err != nil {
		return fmt.Errorf("%w: iv is not valid base64", ErrInvalidEntry)
	}
	if len(rawIV) != crypto.IVSize {
		return fmt.Errorf("%w: iv must decode to %d bytes", ErrInvalidEntry, crypto.IVSize)
	}

	rawCiphertext, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return fmt.Errorf("%w: ciphertext is not valid base64", ErrInvalidEntry)
	}
	if len(rawCiphertext) < crypto.TagSize {
		return fmt.Errorf("%w: ciphertext shorter than the authentication tag", ErrInvalidEntry)
	}

	return nil
}
