package services

import "errors"

// Sentinel errors for caller-visible failure classes. Anything else coming
// out of a service is a storage failure wrapped with context.
var (
	// ErrInvalidInput marks malformed parameters, rejected before any
	// storage access.
	ErrInvalidInput = errors.New("invalid input")

	// ErrForbidden marks a caller whose role or identity does not permit
	// the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrConflict marks a claim on a slot that is no longer available.
	// This is expected contention, not a system fault.
	ErrConflict = errors.New("conflict")
)
