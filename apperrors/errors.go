// Package apperrors enumerates the error kinds the services report,
// so handlers can map them to status codes with errors.Is instead of
// inspecting driver-specific failures.
package apperrors

import "errors"

var (
	// ErrValidation signals a missing or malformed required field.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID signals an identifier that fails the format check.
	// Distinct from ErrNotFound: a malformed id is a client mistake,
	// not an absent document.
	ErrInvalidID = errors.New("invalid identifier")

	// ErrInvalidRating signals a rating outside 1-5 or of the wrong
	// type.
	ErrInvalidRating = errors.New("rating must be an integer between 1 and 5")

	// ErrUnauthorized signals missing or failed authentication.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound signals that a referenced document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict signals a uniqueness violation, e.g. registering an
	// email that is already taken.
	ErrConflict = errors.New("conflict")

	// ErrStoreUnavailable signals a failed data-store call.
	ErrStoreUnavailable = errors.New("data store unavailable")
)
