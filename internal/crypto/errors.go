package crypto

import "errors"

var (
	// ErrKDFUnavailable is returned when key derivation cannot run because
	// the underlying primitive (in practice, the OS CSPRNG) is unavailable.
	// This is fatal for the operation; it is never caused by a weak password.
	ErrKDFUnavailable = errors.New("key derivation unavailable")

	// ErrAuthenticationFailed is returned when the AEAD tag check fails on
	// decrypt: wrong key, corrupted data, or tampering. Callers surface this
	// as "wrong master password or corrupted entry"; the two cases are
	// indistinguishable.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrInvalidKeyLength is returned when a key is not 32 bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidSaltLength is returned when a provided salt is not 16 bytes.
	ErrInvalidSaltLength = errors.New("invalid salt length")
)
