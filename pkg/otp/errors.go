package otp

import "errors"

// Common errors returned by this package.
var (
	// ErrInvalidArgument indicates a malformed input: an empty seed,
	// a non-positive length or digit count, or a QR request carrying
	// neither a seed nor a URL.
	ErrInvalidArgument = errors.New("otp: invalid argument")
	// ErrInvalidCode indicates the provided OTP code is invalid.
	ErrInvalidCode = errors.New("otp: invalid code")
	// ErrInvalidConfig indicates the configuration is invalid.
	ErrInvalidConfig = errors.New("otp: invalid configuration")
	// ErrNilAuthenticator indicates a nil authenticator was used.
	ErrNilAuthenticator = errors.New("otp: authenticator is nil")
)
