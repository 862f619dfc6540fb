package storage

import "errors"

// Common storage errors.
var (
	// ErrNotFound is returned when an annotation record is not found.
	ErrNotFound = errors.New("annotation not found")

	// ErrInvalidID is returned for a malformed record identifier.
	ErrInvalidID = errors.New("invalid record ID")
)
