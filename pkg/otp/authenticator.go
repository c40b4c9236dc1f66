package otp

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Type represents the OTP algorithm type.
type Type string

const (
	// TypeTOTP represents Time-based OTP (RFC 6238).
	TypeTOTP Type = "totp"
	// TypeHOTP represents Counter-based OTP (RFC 4226).
	TypeHOTP Type = "hotp"
)

// Config holds OTP authenticator configuration.
type Config struct {
	// Type specifies the OTP type (TOTP or HOTP).
	Type Type
	// Seed is the shared secret (required). Its bytes are used
	// directly as the HMAC key; seeds from GenerateSeed use the
	// base-36 alphabet 0-9a-z.
	Seed string
	// Issuer is the name of the issuing organization (e.g., "MyApp").
	Issuer string
	// AccountName is the account identifier (e.g., "user@example.com").
	AccountName string
	// Digits specifies the number of digits in the OTP code.
	// Default: 6
	Digits int
	// Period specifies the time step in seconds for TOTP.
	// Default: 30
	Period int
	// Counter specifies the counter value HOTP codes are validated
	// against.
	// Default: 0
	Counter uint64
	// DriftBefore and DriftAfter specify how many counters below and
	// above the expected one HOTP validation will accept (tolerance
	// for counter skew between token and verifier).
	// Default: 0
	DriftBefore uint64
	DriftAfter  uint64
	// Now supplies the current time for TOTP validation. Intended for
	// tests.
	// Default: time.Now
	Now func() time.Time
}

// validate checks that the configuration is valid.
func (c Config) validate() error {
	// Validate type
	if c.Type != TypeTOTP && c.Type != TypeHOTP {
		return fmt.Errorf("%w: type must be 'totp' or 'hotp'", ErrInvalidConfig)
	}

	// Validate seed
	if c.Seed == "" {
		return fmt.Errorf("%w: seed must not be empty", ErrInvalidConfig)
	}

	if c.Digits < 0 {
		return fmt.Errorf("%w: digits must not be negative", ErrInvalidConfig)
	}

	if c.Period < 0 {
		return fmt.Errorf("%w: period must not be negative", ErrInvalidConfig)
	}

	return nil
}

// Authenticator validates OTP codes derived from a shared seed.
// It is safe for concurrent use.
type Authenticator struct {
	cfg Config
	now func() time.Time
}

// NewAuthenticator creates a new OTP authenticator.
// The configuration is validated and an error is returned if invalid.
func NewAuthenticator(cfg Config) (*Authenticator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Apply defaults
	if cfg.Digits == 0 {
		cfg.Digits = DefaultDigits
	}
	if cfg.Period == 0 {
		cfg.Period = DefaultPeriod
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Authenticator{
		cfg: cfg,
		now: now,
	}, nil
}

// Authenticate validates an OTP code.
// For TOTP, it validates against the current time step.
// For HOTP, it validates against the configured counter value, widened
// by the configured drift window.
func (a *Authenticator) Authenticate(ctx context.Context, code string) error {
	if a == nil {
		return ErrNilAuthenticator
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	n, err := a.parseCode(code)
	if err != nil {
		return err
	}

	if a.cfg.Type == TypeTOTP {
		valid, err := VerifyTOTPCustom(a.cfg.Seed, n, a.now().UTC(), TOTPOpts{
			Period: a.cfg.Period,
			Digits: a.cfg.Digits,
		})
		if err != nil {
			return fmt.Errorf("%w: validation failed: %v", ErrInvalidCode, err)
		}
		if !valid {
			return ErrInvalidCode
		}
		return nil
	}

	// HOTP validation using the configured counter
	valid, err := VerifyHOTPCustom(a.cfg.Seed, n, a.cfg.Counter, VerifyOpts{
		Digits:      a.cfg.Digits,
		DriftBefore: a.cfg.DriftBefore,
		DriftAfter:  a.cfg.DriftAfter,
	})
	if err != nil {
		return fmt.Errorf("%w: validation failed: %v", ErrInvalidCode, err)
	}
	if !valid {
		return ErrInvalidCode
	}

	return nil
}

// ValidateCounter validates an HOTP code against the given counter and
// returns the next counter value. This method is only valid for HOTP
// authenticators. The returned counter should be stored and used for
// the next validation.
func (a *Authenticator) ValidateCounter(ctx context.Context, code string, counter uint64) (uint64, error) {
	if a == nil {
		return 0, ErrNilAuthenticator
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if a.cfg.Type != TypeHOTP {
		return 0, fmt.Errorf("%w: ValidateCounter is only valid for HOTP", ErrInvalidConfig)
	}

	n, err := a.parseCode(code)
	if err != nil {
		return 0, err
	}

	valid, err := VerifyHOTPCustom(a.cfg.Seed, n, counter, VerifyOpts{
		Digits:      a.cfg.Digits,
		DriftBefore: a.cfg.DriftBefore,
		DriftAfter:  a.cfg.DriftAfter,
	})
	if err != nil {
		return 0, fmt.Errorf("%w: validation failed: %v", ErrInvalidCode, err)
	}
	if !valid {
		return 0, ErrInvalidCode
	}

	// Return incremented counter
	return counter + 1, nil
}

// Generate generates an OTP code, zero-padded to the configured number
// of digits.
// For TOTP, it generates the code for the current time step.
// For HOTP, a counter value must be provided.
func (a *Authenticator) Generate(counter ...uint64) (string, error) {
	if a == nil {
		return "", ErrNilAuthenticator
	}

	if a.cfg.Type == TypeTOTP {
		c := timeCounter(a.now().UTC(), a.cfg.Period)
		code, err := GenerateCodeCustom(a.cfg.Seed, c, a.cfg.Digits)
		if err != nil {
			return "", fmt.Errorf("otp: failed to generate TOTP code: %w", err)
		}
		return FormatCode(code, a.cfg.Digits), nil
	}

	// HOTP requires counter
	if len(counter) == 0 {
		return "", fmt.Errorf("otp: counter required for HOTP generation")
	}

	code, err := GenerateCodeCustom(a.cfg.Seed, counter[0], a.cfg.Digits)
	if err != nil {
		return "", fmt.Errorf("otp: failed to generate HOTP code: %w", err)
	}

	return FormatCode(code, a.cfg.Digits), nil
}

// GetProvisioningURI returns the otpauth:// URI for QR code generation.
// This URI can be encoded as a QR code and scanned by authenticator apps.
func (a *Authenticator) GetProvisioningURI() string {
	if a == nil {
		return ""
	}

	// Seed is validated at construction, so the URL build cannot fail.
	uri, _ := GenerateURL(a.cfg.Seed, a.cfg.Issuer, a.cfg.AccountName)
	return uri
}

// QRCode renders the provisioning URI as a PNG image.
func (a *Authenticator) QRCode(ctx context.Context) ([]byte, error) {
	if a == nil {
		return nil, ErrNilAuthenticator
	}

	return GenerateQRCode(ctx, QRCodeOptions{
		Seed:        a.cfg.Seed,
		Issuer:      a.cfg.Issuer,
		AccountName: a.cfg.AccountName,
	})
}

// parseCode converts a user-supplied code string to its numeric value.
// Leading zeros are accepted and ignored, matching FormatCode output.
func (a *Authenticator) parseCode(code string) (int, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return 0, fmt.Errorf("%w: code must not be empty", ErrInvalidCode)
	}

	n, err := strconv.Atoi(code)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: code must be numeric", ErrInvalidCode)
	}

	return n, nil
}
