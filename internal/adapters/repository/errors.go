package repository

import "errors"

// Sentinel kinds for answer store errors.
var (
	ErrNotFound       = errors.New("session not found")
	ErrInvalidSession = errors.New("invalid session id")
	ErrCorrupt        = errors.New("stored answers are corrupt")
)
