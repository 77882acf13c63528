// Package error defines domain-specific errors for the Pennywise application.
package error

import "errors"

// Authentication domain errors. Pennywise does not run its own login flow;
// these cover bearer-token resolution for requests minted by the external
// auth layer.
var (
	// ErrInvalidToken is returned when a token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token has expired.
	ErrExpiredToken = errors.New("token has expired")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Token errors (03XXXX)
	ErrCodeInvalidToken AuthErrorCode = "AUTH-030001"
	ErrCodeExpiredToken AuthErrorCode = "AUTH-030002"
	ErrCodeMissingToken AuthErrorCode = "AUTH-030003"

	// Throttling (02XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUTH-020003"
)
