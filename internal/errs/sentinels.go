// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist
	// (or is owned by a different user, which is indistinguishable).
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates failed authentication.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates temporary login lock due to rate limiting.
	ErrRateLimited = errors.New("rate limited")

	// ErrAlreadyExists indicates a unique constraint violation (e.g., username taken).
	ErrAlreadyExists = errors.New("already exists")

	// ErrPasswordMismatch indicates password and repeat password differ at registration.
	ErrPasswordMismatch = errors.New("password mismatch")

	// ErrFieldNotAllowed indicates an update to a field outside the allowed whitelist.
	ErrFieldNotAllowed = errors.New("field not allowed")

	// ErrOrderOutOfRange indicates a reorder target position outside [1, N].
	ErrOrderOutOfRange = errors.New("order out of range")
)
