package api

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/okian/bizmatch/internal/domain/model"
	"github.com/xeipuuv/gojsonschema"
)

// answersSchema describes the body of PUT and POST /sessions/{id}/answers.
const answersSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["answers"],
  "additionalProperties": false,
  "properties": {
    "answers": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["questionId", "answer"],
        "additionalProperties": false,
        "properties": {
          "questionId": {"type": "string", "minLength": 1},
          "answer": {
            "oneOf": [
              {"type": "string"},
              {"type": "number"},
              {"type": "array", "items": {"type": "string"}}
            ]
          }
        }
      }
    }
  }
}`

var compiledAnswersSchema = mustSchema(answersSchema) //nolint:gochecknoglobals // compiled once

func mustSchema(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("compile schema: %v", err))
	}
	return s
}

type answersRequest struct {
	Answers []model.Answer `json:"answers"`
}

// decodeAnswers checks body against the schema and decodes it.
func decodeAnswers(body []byte) ([]model.Answer, error) {
	result, err := compiledAnswersSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidBody, strings.Join(errs, "; "))
	}

	var req answersRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	if req.Answers == nil {
		req.Answers = []model.Answer{}
	}
	return req.Answers, nil
}
