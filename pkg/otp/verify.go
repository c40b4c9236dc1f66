package otp

import (
	"fmt"
	"time"
)

// DefaultPeriod is the TOTP time step in seconds.
const DefaultPeriod = 30

// VerifyOpts controls HOTP verification.
type VerifyOpts struct {
	// Digits is the code length.
	// Default: DefaultDigits
	Digits int
	// DriftBefore and DriftAfter widen the counter window searched for
	// a match to [counter-DriftBefore, counter+DriftAfter], tolerating
	// skew between generator and verifier.
	// Default: 0 (exact match only)
	DriftBefore uint64
	DriftAfter  uint64
}

// TOTPOpts controls TOTP verification.
type TOTPOpts struct {
	// Period is the time step in seconds.
	// Default: DefaultPeriod
	Period int
	// Digits is the code length.
	// Default: DefaultDigits
	Digits int
}

// VerifyHOTP reports whether code is the six-digit HOTP code for the
// seed at exactly the given counter.
func VerifyHOTP(seed string, code int, counter uint64) (bool, error) {
	return VerifyHOTPCustom(seed, code, counter, VerifyOpts{})
}

// VerifyHOTPCustom reports whether code matches any counter in the
// inclusive window [counter-DriftBefore, counter+DriftAfter], scanned
// in ascending order. A window reaching below zero wraps the uint64
// counter; the wrapped value hashes with the same bytes as the
// equivalent two's-complement negative integer, so generation and
// verification agree across the boundary.
//
// The scan is not constant-time: it returns on the first match.
func VerifyHOTPCustom(seed string, code int, counter uint64, opts VerifyOpts) (bool, error) {
	if opts.Digits == 0 {
		opts.Digits = DefaultDigits
	}

	for i := -int64(opts.DriftBefore); i <= int64(opts.DriftAfter); i++ {
		candidate, err := GenerateCodeCustom(seed, counter+uint64(i), opts.Digits)
		if err != nil {
			return false, err
		}
		if candidate == code {
			return true, nil
		}
	}

	return false, nil
}

// VerifyTOTP reports whether code is the six-digit TOTP code for the
// seed at the current time, using the default 30-second step.
func VerifyTOTP(seed string, code int) (bool, error) {
	return VerifyTOTPCustom(seed, code, time.Now().UTC(), TOTPOpts{})
}

// VerifyTOTPCustom verifies code against the time step containing t.
// Only that step matches; callers needing step tolerance should use
// VerifyHOTPCustom with an explicit counter and drift window.
func VerifyTOTPCustom(seed string, code int, t time.Time, opts TOTPOpts) (bool, error) {
	if opts.Period == 0 {
		opts.Period = DefaultPeriod
	}
	if opts.Period < 1 {
		return false, fmt.Errorf("%w: period must be at least 1 second", ErrInvalidArgument)
	}

	counter := timeCounter(t, opts.Period)
	return VerifyHOTPCustom(seed, code, counter, VerifyOpts{Digits: opts.Digits})
}

// timeCounter maps t to its TOTP counter: unix seconds divided by the
// step, clamped at zero for pre-epoch clocks.
func timeCounter(t time.Time, period int) uint64 {
	secs := t.Unix()
	if secs < 0 {
		secs = 0
	}
	return uint64(secs) / uint64(period)
}
