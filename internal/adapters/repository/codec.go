package repository

import (
	"encoding/json"
	"fmt"

	"github.com/okian/bizmatch/internal/domain/model"
)

// encode writes answers as the JSON list of {questionId, answer} pairs.
func encode(answers []model.Answer) ([]byte, error) {
	if answers == nil {
		answers = []model.Answer{}
	}
	b, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("encode answers: %w", err)
	}
	return b, nil
}

func decode(b []byte) ([]model.Answer, error) {
	answers := []model.Answer{}
	if err := json.Unmarshal(b, &answers); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return answers, nil
}
