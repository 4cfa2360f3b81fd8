package api

import (
	"errors"
	"net/http"

	service "github.com/okian/bizmatch/internal/app"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrInvalidBody  = errors.New("request body does not match schema")
	ErrInvalidLimit = errors.New("limit must be a positive integer")
)

// Error codes written in {code, message} bodies.
const (
	codeBadRequest    = "bad_request"
	codeInvalidAnswer = "invalid_answers"
	codeInvalidLimit  = "invalid_limit"
	codeInvalidFilter = "invalid_filter"
	codeNotFound      = "not_found"
	codeInternal      = "internal_error"
)

// classify maps an error to its HTTP status and body code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, service.ErrModelNotFound):
		return http.StatusNotFound, codeNotFound
	case errors.Is(err, service.ErrInvalidAnswers), errors.Is(err, ErrInvalidBody):
		return http.StatusBadRequest, codeInvalidAnswer
	case errors.Is(err, service.ErrInvalidLimit), errors.Is(err, ErrInvalidLimit):
		return http.StatusBadRequest, codeInvalidLimit
	case errors.Is(err, service.ErrInvalidFilter):
		return http.StatusBadRequest, codeInvalidFilter
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, codeBadRequest
	default:
		return http.StatusInternalServerError, codeInternal
	}
}
