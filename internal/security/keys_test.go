package security

import (
	"bytes"
	"testing"
)

func TestDeriveKeyIsDeterministicPerPurpose(t *testing.T) {
	t.Parallel()

	secret := []byte("0123456789abcdef0123456789abcdef")

	first, err := DeriveKey(secret, "session-token")
	if err != nil {
		t.Fatalf("DeriveKey() unexpected error: %v", err)
	}
	if len(first) != derivedKeyLength {
		t.Fatalf("expected %d byte key, got %d", derivedKeyLength, len(first))
	}

	again, err := DeriveKey(secret, "session-token")
	if err != nil {
		t.Fatalf("DeriveKey() unexpected error: %v", err)
	}
	if !bytes.Equal(first, again) {
		t.Fatal("expected identical keys for identical inputs")
	}

	other, err := DeriveKey(secret, "preset-token")
	if err != nil {
		t.Fatalf("DeriveKey() unexpected error: %v", err)
	}
	if bytes.Equal(first, other) {
		t.Fatal("expected different purposes to yield different keys")
	}
	if bytes.Equal(first, secret) {
		t.Fatal("expected derived key to differ from the secret")
	}
}

func TestDeriveKeyRejectsEmptySecret(t *testing.T) {
	t.Parallel()

	if _, err := DeriveKey(nil, "session-token"); err == nil {
		t.Fatal("expected empty secret to be rejected")
	}
}
