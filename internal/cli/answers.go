package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/okian/bizmatch/internal/domain/model"
	"github.com/okian/bizmatch/internal/domain/questions"
)

// ErrNoAnswersFile is returned when a scoring command runs without --answers.
var ErrNoAnswersFile = errors.New("--answers is required")

// readAnswersFile loads answers from path, or from stdin when path is "-".
func readAnswersFile(path string, stdin io.Reader) ([]model.Answer, error) {
	if path == "" {
		return nil, ErrNoAnswersFile
	}

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read answers: %w", err)
	}
	return parseAnswers(data)
}

// rawAnswer keeps the answer undecoded until its question is known.
type rawAnswer struct {
	QuestionID string          `json:"questionId"`
	Answer     json.RawMessage `json:"answer"`
}

// parseAnswers accepts {"answers":[...]} or a bare answer list. Values are
// coerced to the shape their question expects, so "4" answers a scale
// question and a lone string answers a multi-select one. Values that cannot
// be coerced are kept as written and left for validation to report.
func parseAnswers(data []byte) ([]model.Answer, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return []model.Answer{}, nil
	}

	var raw []rawAnswer
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse answers: %w", err)
		}
	} else {
		var wrapped struct {
			Answers []rawAnswer `json:"answers"`
		}
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, fmt.Errorf("failed to parse answers: %w", err)
		}
		raw = wrapped.Answers
	}

	answers := make([]model.Answer, 0, len(raw))
	for _, r := range raw {
		value, err := interpret(r)
		if err != nil {
			return nil, err
		}
		answers = append(answers, model.Answer{QuestionID: r.QuestionID, Value: value})
	}
	return answers, nil
}

func interpret(r rawAnswer) (model.AnswerValue, error) {
	var decoded any
	if len(r.Answer) > 0 {
		if err := json.Unmarshal(r.Answer, &decoded); err != nil {
			return model.AnswerValue{}, fmt.Errorf("failed to parse answer to %s: %w", r.QuestionID, err)
		}
	}
	if v, err := questions.Interpret(r.QuestionID, decoded); err == nil {
		return v, nil
	}

	var v model.AnswerValue
	if len(r.Answer) > 0 {
		if err := json.Unmarshal(r.Answer, &v); err != nil {
			return model.AnswerValue{}, fmt.Errorf("failed to parse answer to %s: %w", r.QuestionID, err)
		}
	}
	return v, nil
}
