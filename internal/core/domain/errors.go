package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates the named corpus resource does not exist.
	// Fatal to the invocation; no partial result is produced.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat indicates an export format outside the
	// closed set. Fatal to the export step only.
	ErrUnsupportedFormat = errors.New("unsupported export format")
)
