package service

import "errors"

// Sentinel kinds returned by the service.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrModelNotFound   = errors.New("business model not found")
	ErrInvalidAnswers  = errors.New("invalid answers")
	ErrInvalidLimit    = errors.New("invalid recommendation limit")
	ErrInvalidFilter   = errors.New("invalid model filter")
)
