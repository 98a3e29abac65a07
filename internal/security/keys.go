package security

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const derivedKeyLength = 32

var errEmptySecret = errors.New("secret must not be empty")

// DeriveKey expands the server secret into an independent key per purpose,
// so that one configured secret can sign unrelated token kinds.
func DeriveKey(secret []byte, purpose string) ([]byte, error) {
	if len(secret) == 0 {
		return nil, errEmptySecret
	}

	reader := hkdf.New(sha256.New, secret, nil, []byte("rangepicker/"+purpose))
	key := make([]byte, derivedKeyLength)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("derive %s key: %w", purpose, err)
	}
	return key, nil
}
