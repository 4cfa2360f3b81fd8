package model

import (
	"bytes"
	"encoding/json"
)

// ValueKind identifies which shape an AnswerValue holds.
type ValueKind int

// Answer value shapes. KindNone marks a value that carries nothing usable.
const (
	KindNone ValueKind = iota
	KindText
	KindNumber
	KindList
)

// AnswerValue holds exactly one of a string, a number or a list of strings.
type AnswerValue struct {
	kind   ValueKind
	text   string
	number float64
	list   []string
}

// Text builds a single-select value.
func Text(s string) AnswerValue { return AnswerValue{kind: KindText, text: s} }

// Number builds a numeric-scale value.
func Number(n float64) AnswerValue { return AnswerValue{kind: KindNumber, number: n} }

// List builds a multi-select value.
func List(items ...string) AnswerValue {
	cp := make([]string, len(items))
	copy(cp, items)
	return AnswerValue{kind: KindList, list: cp}
}

// Kind returns the value's shape.
func (v AnswerValue) Kind() ValueKind { return v.kind }

// AsText returns the string value and whether the value is a string.
func (v AnswerValue) AsText() (string, bool) { return v.text, v.kind == KindText }

// AsNumber returns the numeric value and whether the value is a number.
func (v AnswerValue) AsNumber() (float64, bool) { return v.number, v.kind == KindNumber }

// AsList returns a copy of the list value and whether the value is a list.
func (v AnswerValue) AsList() ([]string, bool) {
	if v.kind != KindList {
		return nil, false
	}
	cp := make([]string, len(v.list))
	copy(cp, v.list)
	return cp, true
}

// MarshalJSON encodes the value as a bare string, number or array.
func (v AnswerValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindText:
		return json.Marshal(v.text)
	case KindNumber:
		return json.Marshal(v.number)
	case KindList:
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes a string, number or string array. Any other shape
// decodes to KindNone instead of failing so stored answers stay readable.
func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	*v = AnswerValue{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*v = Text(s)
	case '[':
		var items []any
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		list := make([]string, 0, len(items))
		for _, it := range items {
			s, ok := it.(string)
			if !ok {
				return nil
			}
			list = append(list, s)
		}
		*v = AnswerValue{kind: KindList, list: list}
	default:
		var n float64
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return nil
		}
		*v = Number(n)
	}
	return nil
}

// Answer pairs a question with the value the user chose.
type Answer struct {
	QuestionID string      `json:"questionId"`
	Value      AnswerValue `json:"answer"`
}

// AnswerSet is the session's answers keyed by question id. At most one value
// is kept per question; later answers replace earlier ones.
type AnswerSet struct {
	values map[string]AnswerValue
}

// NewAnswerSet builds a set from an ordered answer list, last write wins.
func NewAnswerSet(answers []Answer) AnswerSet {
	values := make(map[string]AnswerValue, len(answers))
	for _, a := range answers {
		values[a.QuestionID] = a.Value
	}
	return AnswerSet{values: values}
}

// Text returns a non-empty string answer.
func (s AnswerSet) Text(questionID string) (string, bool) {
	v, ok := s.values[questionID]
	if !ok {
		return "", false
	}
	t, isText := v.AsText()
	if !isText || t == "" {
		return "", false
	}
	return t, true
}

// Scale returns the numeric answer, or 0 when the question is unanswered or
// was answered with a non-number. 0 is never a valid scale point.
func (s AnswerSet) Scale(questionID string) float64 {
	v, ok := s.values[questionID]
	if !ok {
		return 0
	}
	n, isNum := v.AsNumber()
	if !isNum {
		return 0
	}
	return n
}

// Len returns the number of stored answers.
func (s AnswerSet) Len() int { return len(s.values) }

// Merge applies later answers over earlier ones and returns the combined
// list in first-seen order.
func Merge(existing []Answer, updates ...Answer) []Answer {
	pos := make(map[string]int, len(existing)+len(updates))
	out := make([]Answer, 0, len(existing)+len(updates))
	for _, a := range append(append([]Answer{}, existing...), updates...) {
		if i, ok := pos[a.QuestionID]; ok {
			out[i] = a
			continue
		}
		pos[a.QuestionID] = len(out)
		out = append(out, a)
	}
	return out
}
