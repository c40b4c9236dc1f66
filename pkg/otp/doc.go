// Package otp derives and verifies short numeric one-time codes from a
// shared seed, implementing HOTP (RFC 4226) and TOTP (RFC 6238), plus
// helpers that provision a seed into an authenticator app via an
// otpauth:// URL and a scannable QR image.
//
// TOTP (Time-based One-Time Password) generates codes that change every
// 30 seconds, commonly used with authenticator apps like Google
// Authenticator, Authy, etc.
//
// HOTP (HMAC-based One-Time Password) generates codes based on a counter
// value, used in hardware tokens and some mobile apps.
//
// # Core Functions
//
// The core is a set of pure functions over (seed, counter):
//
//	seed, err := otp.GenerateSeed(otp.DefaultSeedLength)
//
//	code, err := otp.GenerateCode(seed, 0)         // HOTP code for counter 0
//	ok, err := otp.VerifyHOTP(seed, code, 0)       // exact-counter check
//	ok, err = otp.VerifyTOTP(seed, code)           // current time step
//
// Verification with tolerance for counter skew:
//
//	ok, err := otp.VerifyHOTPCustom(seed, code, counter, otp.VerifyOpts{
//	    DriftAfter: 2, // also accept codes for counter+1 and counter+2
//	})
//
// Codes are returned as integers without leading zeros; use FormatCode
// for the zero-padded form users see:
//
//	otp.FormatCode(1234, 6) // "001234"
//
// # Authenticator
//
// Authenticator wraps the core functions behind a validated
// configuration:
//
//	config := otp.Config{
//	    Type:        otp.TypeTOTP,
//	    Seed:        seed,
//	    Issuer:      "MyApp",
//	    AccountName: "user@example.com",
//	}
//
//	auth, err := otp.NewAuthenticator(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Validate a code from the user's authenticator app
//	err = auth.Authenticate(ctx, "123456")
//
// For HOTP, validate a code and advance the counter:
//
//	newCounter, err := auth.ValidateCounter(ctx, "123456", currentCounter)
//	if err == nil {
//	    currentCounter = newCounter // store for next validation
//	}
//
// # Provisioning
//
// GenerateURL builds the otpauth:// URI consumed by authenticator apps,
// and GenerateQRCode renders it as a PNG:
//
//	uri, err := otp.GenerateURL(seed, "MyApp", "user@example.com")
//
//	png, err := otp.GenerateQRCode(ctx, otp.QRCodeOptions{
//	    Seed:   seed,
//	    Issuer: "MyApp",
//	})
//
// The URL layout is the legacy one existing enrollments scan; the seed
// travels base32-encoded with padding stripped.
//
// # Thread Safety
//
// All functions and the Authenticator type are safe for concurrent use:
// every call operates solely on its own inputs, and the only shared
// resource is the process-wide secure random source behind GenerateSeed.
//
// # Security Notes
//
// The hash algorithm is SHA-1 per the original Google Authenticator
// profile. Verification scans the drift window with an early exit, so
// it is not constant-time; acceptable for online guessing threat
// models, but use a constant-time comparison if porting this into a
// side-channel-sensitive context.
package otp
