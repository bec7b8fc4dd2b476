package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrStorageUnavailable indicates the embedded product database could not
	// be reached. Callers degrade to the snapshot store instead of failing.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrDuplicateCredential indicates a registration with an email that is
	// already taken.
	ErrDuplicateCredential = errors.New("email already registered")
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
