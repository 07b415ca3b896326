package services

import "errors"

// Error taxonomy shared by all services. Handlers map these onto HTTP status codes;
// anything not listed here surfaces as an internal error.
var (
	// ErrNotFound covers both "does not exist" and "not owned by the caller".
	// The two are deliberately indistinguishable so the API never confirms that
	// another user's entity exists.
	ErrNotFound = errors.New("resource not found")

	ErrUnauthorized   = errors.New("unauthorized")
	ErrSessionRevoked = errors.New("session revoked")
)
