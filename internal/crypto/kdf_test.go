package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestDerive_GeneratesSaltWhenAbsent(t *testing.T) {
	kdf := NewKeyDeriver()

	_, s1, err := kdf.Derive("password", nil)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	_, s2, err := kdf.Derive("password", nil)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}

	if len(s1) != SaltSize {
		t.Fatalf("salt length = %d, want %d", len(s1), SaltSize)
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected fresh salts to differ, but they are equal")
	}
}

func TestDerive_DeterministicForSameInputs(t *testing.T) {
	kdf := NewKeyDeriver()

	password := "correct-horse-battery"
	salt := bytes.Repeat([]byte{0xAB}, SaltSize)

	k1, _, err := kdf.Derive(password, salt)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	k2, _, err := kdf.Derive(password, salt)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}

	if len(k1) != KeySize {
		t.Fatalf("key length = %d, want %d", len(k1), KeySize)
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected identical keys for identical password+salt")
	}
}

func TestDerive_DifferentSaltProducesDifferentKey(t *testing.T) {
	kdf := NewKeyDeriver()

	password := "same password"
	salt1 := bytes.Repeat([]byte{0x01}, SaltSize)
	salt2 := bytes.Repeat([]byte{0x02}, SaltSize)

	k1, _, err := kdf.Derive(password, salt1)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	k2, _, err := kdf.Derive(password, salt2)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different keys for different salts")
	}
}

func TestDerive_DifferentPasswordProducesDifferentKey(t *testing.T) {
	kdf := NewKeyDeriver()

	salt := bytes.Repeat([]byte{0x0F}, SaltSize)

	k1, _, err := kdf.Derive("password-one", salt)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	k2, _, err := kdf.Derive("password-two", salt)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different keys for different passwords")
	}
}

func TestDerive_RejectsWrongSaltLength(t *testing.T) {
	kdf := NewKeyDeriver()

	_, _, err := kdf.Derive("password", []byte("short"))
	if !errors.Is(err, ErrInvalidSaltLength) {
		t.Fatalf("error = %v, want ErrInvalidSaltLength", err)
	}
}

func TestDerive_ReturnsProvidedSalt(t *testing.T) {
	kdf := NewKeyDeriver()

	salt := bytes.Repeat([]byte{0x42}, SaltSize)
	_, outSalt, err := kdf.Derive("password", salt)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}

	if !bytes.Equal(salt, outSalt) {
		t.Fatalf("expected Derive to hand back the provided salt")
	}
}
