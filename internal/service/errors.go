package service

import "errors"

var (
	// ErrValidation marks a request rejected before any mutation; the
	// wrapped detail names the offending field.
	ErrValidation = errors.New("validation failed")

	// ErrAuthenticationRequired is returned when an operation needs a
	// resolved caller and the context carries none.
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrAccessDenied is returned when the caller is resolved but lacks the
	// required role or ownership.
	ErrAccessDenied = errors.New("access denied")
)
