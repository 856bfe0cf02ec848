package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
)

// fingerprinter is the private implementation of [Fingerprinter].
type fingerprinter struct{}

// NewFingerprinter constructs a [Fingerprinter].
func NewFingerprinter() Fingerprinter {
	return &fingerprinter{}
}

// Fingerprint implements [Fingerprinter]. It computes SHA-256 over the raw
// key material and base64-encodes the digest for storage. The digest is
// one-way: it verifies a candidate key but cannot be turned back into one,
// which is the whole point of storing it server-side.
func (f *fingerprinter) Fingerprint(key []byte) string {
	sum := sha256.Sum256(key)
	return base64.StdEncoding.EncodeToString(sum[:])
}

// Matches implements [Fingerprinter]. The comparison runs in constant time
// so a mismatch reveals nothing about how many digest bytes agreed.
func (f *fingerprinter) Matches(key []byte, fingerprint string) bool {
	stored, err := base64.StdEncoding.DecodeString(fingerprint)
	if err != nil {
		return false
	}
	sum := sha256.Sum256(key)
	return subtle.ConstantTimeCompare(sum[:], stored) == 1
}
