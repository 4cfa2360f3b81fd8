package questions

import "errors"

// Sentinel errors for answer interpretation and validation.
var (
	ErrUnknownQuestion = errors.New("unknown question")
	ErrInvalidAnswer   = errors.New("invalid answer")
)
