package security

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

var (
	errNonPositiveLength = errors.New("identifier length must be positive")
	errAlphabetSize      = errors.New("alphabet must hold between 2 and 256 symbols")
)

// NewIdentifier draws length symbols from alphabet using crypto/rand.
func NewIdentifier(length int, alphabet string) (string, error) {
	return identifierFrom(rand.Reader, length, alphabet)
}

// identifierFrom rejects bytes at or above the largest multiple of the
// alphabet size, keeping every symbol equally likely.
func identifierFrom(source io.Reader, length int, alphabet string) (string, error) {
	if length <= 0 {
		return "", errNonPositiveLength
	}
	size := len(alphabet)
	if size < 2 || size > 256 {
		return "", errAlphabetSize
	}

	cutoff := 256 - 256%size
	out := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(out) < length {
		if _, err := io.ReadFull(source, buf); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= cutoff {
				continue
			}
			out = append(out, alphabet[int(b)%size])
			if len(out) == length {
				break
			}
		}
	}
	return string(out), nil
}
