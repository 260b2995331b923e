package services

import "errors"

var (
	// ErrNotFound is returned by the stores when a document is absent.
	ErrNotFound = errors.New("not found")

	// ErrWeakPassword rejects registration passwords under the minimum length.
	ErrWeakPassword = errors.New("password too short")

	// ErrDuplicateUsername rejects registration for a username that is taken.
	ErrDuplicateUsername = errors.New("username already registered")

	// ErrUnknownUser is returned by local login when the username is absent.
	ErrUnknownUser = errors.New("unknown user")

	// ErrBadCredentials is returned by local login when the password does
	// not match the stored hash.
	ErrBadCredentials = errors.New("bad credentials")
)
