package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
)

// cipherEngine is the private implementation of [CipherEngine].
type cipherEngine struct{}

// NewCipherEngine constructs a [CipherEngine] using AES-256-GCM.
func NewCipherEngine() CipherEngine {
	return &cipherEngine{}
}

// Encrypt implements [CipherEngine]. Steps:
//  1. Serialize the payload to JSON.
//  2. Build AES-256-GCM from the key.
//  3. Draw a fresh random 12-byte IV.
//  4. Seal; the 16-byte tag is appended to the ciphertext by GCM.
//
// The IV and the ciphertext are returned as two separate base64 values:
// the stored record keeps them as distinct columns.
func (c *cipherEngine) Encrypt(key []byte, payload any) (string, string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", "", err
	}

	plaintext, err := json.Marshal(payload)
	if err != nil {
		return "", "", fmt.Errorf("marshal payload: %w", err)
	}

	iv := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", "", fmt.Errorf("generate iv: %w", err)
	}

	ciphertext := gcm.Seal(nil, iv, plaintext, nil)

	return base64.StdEncoding.EncodeToString(iv),
		base64.StdEncoding.EncodeToString(ciphertext),
		nil
}

// Decrypt implements [CipherEngine]. The tag is verified before any
// plaintext is produced; on tag failure the returned error wraps
// [ErrAuthenticationFailed] and carries no further detail: wrong key and
// corrupted record must stay indistinguishable.
func (c *cipherEngine) Decrypt(key []byte, ivB64, cipherB64 string, target any) error {
	gcm, err := newGCM(key)
	if err != nil {
		return err
	}

	iv, err := base64.StdEncoding.DecodeString(ivB64)
	if err != nil {
		return fmt.Errorf("decode iv: %w", err)
	}
	if len(iv) != gcm.NonceSize() {
		return fmt.Errorf("%w: iv is %d bytes, want %d", ErrAuthenticationFailed, len(iv), gcm.NonceSize())
	}

	ciphertext, err := base64.StdEncoding.DecodeString(cipherB64)
	if err != nil {
		return fmt.Errorf("decode ciphertext: %w", err)
	}

	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return ErrAuthenticationFailed
	}

	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	return nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidKeyLength, len(key), KeySize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
