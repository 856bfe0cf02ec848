package crypto

// KeyDeriver turns a master password into a symmetric encryption key.
//
// Derivation is a pure function of (password, salt, iteration count): the
// same inputs always produce the same key, which is what makes unlocking the
// vault in a later session possible at all. The component performs no I/O.
type KeyDeriver interface {
	// Derive stretches password into a 256-bit key using
	// PBKDF2-HMAC-SHA256. When salt is nil a fresh random 16-byte salt is
	// generated and returned alongside the key; otherwise the provided salt
	// is used as-is (this is the unlock path).
	//
	// Fails only if the OS CSPRNG is unavailable ([ErrKDFUnavailable]) or
	// the provided salt has the wrong length. Password strength is the
	// caller's policy, not this component's.
	Derive(password string, salt []byte) (key, outSalt []byte, err error)
}

// Fingerprinter produces a non-reversible check value for a derived key.
//
// The fingerprint is a digest, not a cipher: it lets the vault confirm that a
// candidate key equals the original without the original (or anything it
// could be recovered from) ever being stored.
type Fingerprinter interface {
	// Fingerprint returns base64(SHA-256(key)).
	Fingerprint(key []byte) string

	// Matches compares a candidate key against a stored fingerprint in
	// constant time.
	Matches(key []byte, fingerprint string) bool
}

// CipherEngine provides authenticated encryption of structured payloads
// under a 256-bit key.
//
// Every Encrypt call draws a fresh random 96-bit IV; IVs are never reused
// across entries or edits. Decryption verifies the AEAD tag before exposing
// any plaintext; a failed tag check is the only signal available to
// distinguish a wrong key from a corrupted record.
type CipherEngine interface {
	// Encrypt JSON-serializes payload and seals it with AES-256-GCM.
	// Returns the IV and the ciphertext-with-tag, both base64 (std).
	Encrypt(key []byte, payload any) (ivB64, cipherB64 string, err error)

	// Decrypt opens a sealed payload and unmarshals the plaintext JSON into
	// target (which must be a non-nil pointer, as for json.Unmarshal).
	// Returns [ErrAuthenticationFailed] if the tag does not verify.
	Decrypt(key []byte, ivB64, cipherB64 string, target any) error
}
