package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to create a new user
	// fails because a user with the same email already exists in the
	// collection.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a lookup or update targets an email
	// that does not resolve to a stored user record.
	ErrUserNotFound = errors.New("user not found")

	// ErrSessionNotFound is returned when no session record is stored, or
	// when the stored record was malformed and has been discarded.
	ErrSessionNotFound = errors.New("session not found")

	// ErrPostNotFound is returned when a post ID resolves to neither a
	// locally stored post nor a catalog entry.
	ErrPostNotFound = errors.New("post not found")
)
