// Package errs contains sentinel errors shared by the access core, the
// repositories and the controllers, so every layer maps failures the same way.
package errs

import "errors"

var (
	// ErrNotFound indicates the requested board, content item or invite does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates the caller has no access, or not enough of it.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrLocked indicates the board edit lease is held by another identity.
	// Callers may retry on the next user action.
	ErrLocked = errors.New("board locked")

	// ErrExpired indicates the board is past its expiry and no longer accepts changes.
	ErrExpired = errors.New("board expired")

	// ErrAlreadyExists indicates a unique constraint violation (e.g. duplicate invite).
	ErrAlreadyExists = errors.New("already exists")
)
