package domain

import "errors"

// Business errors. These are expected outcomes: they propagate unchanged to
// the HTTP boundary, where the central error handler maps them to status
// codes. Anything else is treated as an internal error and never echoed to
// the caller.
var (
	// ErrInvalidCredentials deliberately covers both "unknown email" and
	// "wrong password" so a caller cannot tell which factor failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailInUse is user-visible, unlike login's generic error.
	ErrEmailInUse = errors.New("email already in use")

	// ErrInvalidCurrentPassword is a business validation failure on
	// change-password, not an authentication failure.
	ErrInvalidCurrentPassword = errors.New("invalid current password")

	ErrUserNotFound = errors.New("user not found")
	ErrFilmNotFound = errors.New("film not found")
	ErrFilmExists   = errors.New("film already exists")

	// ErrSyncInProgress is returned when another synchronization run holds
	// the lease.
	ErrSyncInProgress = errors.New("synchronization already in progress")
)
