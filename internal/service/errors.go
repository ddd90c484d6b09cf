package service

import "errors"

// Sentinel errors for the three failure kinds the services produce.
// Callers match with errors.Is; the wrapped message carries the detail.
var (
	// ErrNotFound covers missing entities and the empty-means-not-found
	// policy on list operations.
	ErrNotFound = errors.New("not found")

	// ErrConflict means a username or email uniqueness constraint would be
	// violated by a create or update.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput means a required field is blank, malformed or too long.
	// The HTTP boundary validates first; services re-check defensively.
	ErrInvalidInput = errors.New("invalid input")
)
