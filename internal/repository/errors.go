package repository

import "errors"

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey is returned when an insert violates a uniqueness
	// constraint. Session keys embed a creation timestamp, so this is not
	// expected in normal operation.
	ErrDuplicateKey = errors.New("duplicate key")
)
