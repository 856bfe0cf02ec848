package crypto

import (
	"bytes"
	"encoding/base64"
	"testing"
)

func TestFingerprint_DeterministicAndEncoded(t *testing.T) {
	fp := NewFingerprinter()

	key := bytes.Repeat([]byte{0x11}, KeySize)

	f1 := fp.Fingerprint(key)
	f2 := fp.Fingerprint(key)
	if f1 != f2 {
		t.Fatalf("expected fingerprint to be deterministic")
	}

	raw, err := base64.StdEncoding.DecodeString(f1)
	if err != nil {
		t.Fatalf("fingerprint is not valid base64: %v", err)
	}
	if len(raw) != 32 {
		t.Fatalf("digest length = %d, want 32", len(raw))
	}
}

func TestFingerprint_DiffersPerKey(t *testing.T) {
	fp := NewFingerprinter()

	f1 := fp.Fingerprint(bytes.Repeat([]byte{0x01}, KeySize))
	f2 := fp.Fingerprint(bytes.Repeat([]byte{0x02}, KeySize))
	if f1 == f2 {
		t.Fatalf("expected different fingerprints for different keys")
	}
}

func TestMatches_AcceptsOriginalKeyOnly(t *testing.T) {
	fp := NewFingerprinter()

	key := bytes.Repeat([]byte{0x2A}, KeySize)
	other := bytes.Repeat([]byte{0x2B}, KeySize)
	stored := fp.Fingerprint(key)

	if !fp.Matches(key, stored) {
		t.Fatalf("expected original key to match its fingerprint")
	}
	if fp.Matches(other, stored) {
		t.Fatalf("expected a different key to be rejected")
	}
}

func TestMatches_RejectsMalformedFingerprint(t *testing.T) {
	fp := NewFingerprinter()

	key := bytes.Repeat([]byte{0x2A}, KeySize)
	if fp.Matches(key, "not-base64!!!") {
		t.Fatalf("expected malformed fingerprint to be rejected")
	}
}
