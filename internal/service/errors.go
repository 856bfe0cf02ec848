package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrInvalidMasterSecret is returned when a master-secret record fails
	// shape validation: both fields must be std-base64 with a 16-byte salt
	// and a 32-byte verification hash.
	ErrInvalidMasterSecret = errors.New("invalid master secret record")

	// ErrInvalidEntry is returned when a vault entry fails shape validation:
	// the IV must decode to 12 bytes and the ciphertext to at least the
	// 16-byte authentication tag.
	ErrInvalidEntry = errors.New("invalid vault entry")
)
