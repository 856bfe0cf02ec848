package vault

import "errors"

var (
	// ErrVaultLocked is returned by operations that need the session key
	// while the session is Locked. No storage round trip happens in that
	// case.
	ErrVaultLocked = errors.New("vault is locked")

	// ErrAlreadyConfigured is returned by Setup when a master-secret record
	// already exists for the owner.
	ErrAlreadyConfigured = errors.New("master password is already configured")

	// ErrNotConfigured is returned by Unlock when no master-secret record
	// exists for the owner yet.
	ErrNotConfigured = errors.New("master password is not configured")

	// ErrWrongPassword is returned by Unlock when the derived key's
	// fingerprint does not match the stored one.
	ErrWrongPassword = errors.New("wrong master password")
)
