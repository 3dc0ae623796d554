package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized indicates the backend rejected the caller's session.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrBackend wraps failures of the external REST backend.
	ErrBackend = errors.New("backend error")
)
