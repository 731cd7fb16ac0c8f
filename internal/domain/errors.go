package domain

import "errors"

var (
	// ErrValidation marks malformed or missing caller input: bad date or
	// time formats, negative intervals, absent required fields.
	ErrValidation = errors.New("validation failed")

	// ErrIdentityNotFound is returned when an operation references an
	// owner email with no matching account.
	ErrIdentityNotFound = errors.New("identity not found")

	// ErrSessionClosed is returned when a close is attempted against a
	// session that is no longer open.
	ErrSessionClosed = errors.New("session already closed")
)
