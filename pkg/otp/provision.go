package otp

import (
	"bytes"
	"context"
	"encoding/base32"
	"fmt"
	"image/png"
	"net/url"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// defaultQRSize is the rendered QR code edge length in pixels.
const defaultQRSize = 200

// GenerateURL builds the otpauth:// provisioning URI for a seed.
// Issuer and account are both optional and omitted when empty.
//
// The layout is the legacy one consumed by existing enrollments: the
// issuer rides in a query parameter directly after the path, the
// account name follows it without a separator of its own, and the
// secret parameter carries the base32 seed with padding stripped.
func GenerateURL(seed, issuer, account string) (string, error) {
	if seed == "" {
		return "", fmt.Errorf("%w: seed must not be empty", ErrInvalidArgument)
	}

	var b strings.Builder
	b.WriteString("otpauth://totp/")
	if issuer != "" {
		b.WriteString("?issuer=")
		b.WriteString(url.QueryEscape(issuer))
	}
	if account != "" {
		b.WriteString(url.PathEscape(account))
	}
	b.WriteString("&secret=")
	b.WriteString(base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString([]byte(seed)))

	return b.String(), nil
}

// QRCodeOptions configures GenerateQRCode.
type QRCodeOptions struct {
	// Seed is the shared secret to provision. A provisioning URL is
	// built from it together with Issuer and AccountName. Ignored when
	// URL is set.
	Seed string
	// URL is rendered as-is when non-empty, taking precedence over
	// Seed.
	URL string
	// Issuer is the name of the issuing organization (e.g., "MyApp").
	Issuer string
	// AccountName is the account identifier (e.g., "user@example.com").
	AccountName string
	// Width and Height are the output dimensions in pixels.
	// Default: 200x200
	Width  int
	Height int
}

// GenerateQRCode renders a provisioning URL as a PNG image suitable
// for scanning with an authenticator app. Exactly one of Seed or URL
// should be set; URL wins when both are, and ErrInvalidArgument is
// returned when neither is.
func GenerateQRCode(ctx context.Context, opts QRCodeOptions) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	uri := opts.URL
	if uri == "" {
		if opts.Seed == "" {
			return nil, fmt.Errorf("%w: either a seed or a url is required", ErrInvalidArgument)
		}
		var err error
		uri, err = GenerateURL(opts.Seed, opts.Issuer, opts.AccountName)
		if err != nil {
			return nil, err
		}
	}

	width := opts.Width
	if width == 0 {
		width = defaultQRSize
	}
	height := opts.Height
	if height == 0 {
		height = defaultQRSize
	}

	code, err := qr.Encode(uri, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("otp: failed to encode QR code: %w", err)
	}

	scaled, err := barcode.Scale(code, width, height)
	if err != nil {
		return nil, fmt.Errorf("otp: failed to scale QR code: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("otp: failed to render PNG: %w", err)
	}

	return buf.Bytes(), nil
}
