package otp

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"strconv"
)

// DefaultDigits is the code length used when callers do not specify one.
const DefaultDigits = 6

// GenerateCode returns the six-digit HOTP code for the seed at the
// given counter.
func GenerateCode(seed string, counter uint64) (int, error) {
	return GenerateCodeCustom(seed, counter, DefaultDigits)
}

// GenerateCodeCustom returns the RFC 4226 HOTP code for the seed at
// the given counter, folded to the given number of digits.
//
// The seed bytes are used directly as the HMAC-SHA1 key and the
// counter is hashed as an 8-byte big-endian integer. The truncated
// 31-bit value is folded by taking the last digits characters of its
// decimal rendering, left-padded with zeros first when shorter. The
// returned integer drops any leading zeros; use FormatCode to restore
// them for display.
func GenerateCodeCustom(seed string, counter uint64, digits int) (int, error) {
	if seed == "" {
		return 0, fmt.Errorf("%w: seed must not be empty", ErrInvalidArgument)
	}
	if digits < 1 {
		return 0, fmt.Errorf("%w: digits must be at least 1", ErrInvalidArgument)
	}

	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(sha1.New, []byte(seed))
	mac.Write(msg[:])
	sum := mac.Sum(nil)

	// Dynamic truncation (RFC 4226 section 5.3): the low nibble of the
	// final digest byte selects a 4-byte window, masked to 31 bits.
	offset := sum[len(sum)-1] & 0x0f
	value := int64(sum[offset]&0x7f)<<24 |
		int64(sum[offset+1])<<16 |
		int64(sum[offset+2])<<8 |
		int64(sum[offset+3])

	text := fmt.Sprintf("%0*d", digits, value)
	code, err := strconv.Atoi(text[len(text)-digits:])
	if err != nil {
		return 0, fmt.Errorf("otp: truncation produced a non-numeric code: %w", err)
	}

	return code, nil
}

// FormatCode renders a code zero-padded to exactly digits characters,
// the form users see in an authenticator app.
func FormatCode(code, digits int) string {
	return fmt.Sprintf("%0*d", digits, code)
}
