package questions

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/okian/bizmatch/internal/domain/model"
)

// Validation error codes.
const (
	CodeUnknownQuestion = "UNKNOWN_QUESTION"
	CodeWrongType       = "WRONG_TYPE"
	CodeOutOfRange      = "OUT_OF_RANGE"
	CodeUnknownOption   = "UNKNOWN_OPTION"
)

// ValidationError describes one rejected answer.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// ValidationErrors collects every rejected answer of a submission.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return "invalid answers: " + strings.Join(parts, "; ")
}

// Unwrap lets callers match ErrInvalidAnswer with errors.Is.
func (v ValidationErrors) Unwrap() error { return ErrInvalidAnswer }

// Validate checks answers against the catalog. It returns nil or a
// ValidationErrors listing every problem in submission order.
func Validate(answers []model.Answer) error {
	var errs ValidationErrors
	for _, a := range answers {
		q, ok := ByID(a.QuestionID)
		if !ok {
			errs = append(errs, ValidationError{
				Field:   a.QuestionID,
				Message: "question does not exist",
				Code:    CodeUnknownQuestion,
			})
			continue
		}
		if e, bad := check(q, a.Value); bad {
			errs = append(errs, e)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func check(q model.Question, v model.AnswerValue) (ValidationError, bool) {
	wrongType := ValidationError{
		Field:   q.ID,
		Message: fmt.Sprintf("expected a %s answer", q.Type),
		Code:    CodeWrongType,
	}
	switch q.Type {
	case model.SingleSelect:
		s, ok := v.AsText()
		if !ok {
			return wrongType, true
		}
		if !q.HasOption(s) {
			return ValidationError{Field: q.ID, Message: fmt.Sprintf("%q is not an option", s), Code: CodeUnknownOption}, true
		}
	case model.NumericScale:
		n, ok := v.AsNumber()
		if !ok {
			return wrongType, true
		}
		if n != math.Trunc(n) || n < float64(q.ScaleMin) || n > float64(q.ScaleMax) {
			return ValidationError{
				Field:   q.ID,
				Message: fmt.Sprintf("must be a whole number between %d and %d", q.ScaleMin, q.ScaleMax),
				Code:    CodeOutOfRange,
			}, true
		}
	case model.MultiSelect:
		items, ok := v.AsList()
		if !ok {
			return wrongType, true
		}
		for _, it := range items {
			if !q.HasOption(it) {
				return ValidationError{Field: q.ID, Message: fmt.Sprintf("%q is not an option", it), Code: CodeUnknownOption}, true
			}
		}
	}
	return ValidationError{}, false
}

// Interpret coerces a JSON-decoded value into the shape the question
// expects. Numeric strings are accepted for scale questions and a lone
// string is accepted for multi-select questions.
func Interpret(questionID string, raw any) (model.AnswerValue, error) {
	q, ok := ByID(questionID)
	if !ok {
		return model.AnswerValue{}, fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}
	switch q.Type {
	case model.SingleSelect:
		if s, ok := raw.(string); ok {
			return model.Text(s), nil
		}
	case model.NumericScale:
		switch n := raw.(type) {
		case float64:
			return model.Number(n), nil
		case int:
			return model.Number(float64(n)), nil
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
				return model.Number(f), nil
			}
		}
	case model.MultiSelect:
		switch l := raw.(type) {
		case []string:
			return model.List(l...), nil
		case string:
			return model.List(l), nil
		case []any:
			items := make([]string, 0, len(l))
			for _, it := range l {
				s, ok := it.(string)
				if !ok {
					return model.AnswerValue{}, fmt.Errorf("%w: %s expects strings", ErrInvalidAnswer, questionID)
				}
				items = append(items, s)
			}
			return model.List(items...), nil
		}
	}
	return model.AnswerValue{}, fmt.Errorf("%w: %s expects a %s answer", ErrInvalidAnswer, questionID, q.Type)
}
