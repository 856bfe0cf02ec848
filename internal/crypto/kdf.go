package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the length of the KDF salt in bytes.
	SaltSize = 16

	// KeySize is the length of the derived key in bytes (AES-256).
	KeySize = 32

	// IVSize is the AES-GCM initialization vector length in bytes.
	IVSize = 12

	// TagSize is the AES-GCM authentication tag length in bytes.
	TagSize = 16

	// Iterations is the fixed PBKDF2 iteration count. Changing it breaks
	// every existing vault, so it is part of the storage format.
	Iterations = 100_000
)

// keyDeriver is the private implementation of [KeyDeriver].
type keyDeriver struct {
	// iterations is stored in the struct so tests can lower it; production
	// code always uses [Iterations].
	iterations int
}

// NewKeyDeriver constructs a [KeyDeriver] running PBKDF2-HMAC-SHA256 with
// [Iterations] iterations. The derivation is the only brute-force barrier
// protecting the master password, hence the high iteration count.
func NewKeyDeriver() KeyDeriver {
	return &keyDeriver{iterations: Iterations}
}

// Derive implements [KeyDeriver]. With a nil salt it reads [SaltSize] random
// bytes from the OS CSPRNG (this is the setup path); with a non-nil salt it
// reproduces the key derived at setup (the unlock path).
func (k *keyDeriver) Derive(password string, salt []byte) ([]byte, []byte, error) {
	if salt == nil {
		salt = make([]byte, SaltSize)
		if _, err := io.ReadFull(rand.Reader, salt); err != nil {
			return nil, nil, fmt.Errorf("%w: generate salt: %w", ErrKDFUnavailable, err)
		}
	}
	if len(salt) != SaltSize {
		return nil, nil, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidSaltLength, len(salt), SaltSize)
	}

	key := pbkdf2.Key([]byte(password), salt, k.iterations, KeySize, sha256.New)
	return key, salt, nil
}
