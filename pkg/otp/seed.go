package otp

import (
	"crypto/rand"
	"fmt"
	"io"
)

// seedAlphabet is the 36-symbol seed alphabet. A random byte maps to a
// symbol as byte % 36: values 0-9 map to '0'-'9', values 10-35 map to
// 'a'-'z'. The modulo leans slightly toward the first 28 symbols; the
// mapping is kept as-is so seeds stay compatible with existing
// deployments.
const seedAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// DefaultSeedLength is the seed length used when callers have no
// reason to choose another one.
const DefaultSeedLength = 48

// GenerateSeed returns a new random seed of the given length, drawn
// from the process-wide cryptographically secure random source.
func GenerateSeed(length int) (string, error) {
	return GenerateSeedFrom(rand.Reader, length)
}

// GenerateSeedFrom is like GenerateSeed but reads random bytes from r,
// one byte per seed character. It exists so tests can supply a
// deterministic source.
func GenerateSeedFrom(r io.Reader, length int) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("%w: seed length must be at least 1", ErrInvalidArgument)
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("otp: failed to read random bytes: %w", err)
	}

	seed := make([]byte, length)
	for i, b := range buf {
		seed[i] = seedAlphabet[int(b)%len(seedAlphabet)]
	}

	return string(seed), nil
}
