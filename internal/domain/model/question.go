// Package model contains domain models passed between layers.
package model

// AnswerType tags how a question is answered and therefore which
// AnswerValue shape it expects.
type AnswerType string

// Supported answer types.
const (
	SingleSelect AnswerType = "single-select"
	NumericScale AnswerType = "numeric-scale"
	MultiSelect  AnswerType = "multi-select"
)

// Category groups questions into the fixed quiz rounds.
type Category string

// Question categories in quiz order.
const (
	CategoryMotivation  Category = "motivation"
	CategoryTimeEffort  Category = "time-effort"
	CategoryPersonality Category = "personality"
	CategoryTools       Category = "tools"
	CategoryStrategy    Category = "strategy"
	CategoryBusinessFit Category = "business-fit"
)

// Categories lists every category in the order the quiz presents them.
func Categories() []Category {
	return []Category{
		CategoryMotivation,
		CategoryTimeEffort,
		CategoryPersonality,
		CategoryTools,
		CategoryStrategy,
		CategoryBusinessFit,
	}
}

// Question is an immutable quiz prompt.
type Question struct {
	ID       string     `json:"id"`
	Prompt   string     `json:"question"`
	Type     AnswerType `json:"type"`
	Category Category   `json:"category"`
	Options  []string   `json:"options,omitempty"`
	ScaleMin int        `json:"scaleMin,omitempty"`
	ScaleMax int        `json:"scaleMax,omitempty"`
}

// HasOption reports whether opt is one of the question's options.
func (q Question) HasOption(opt string) bool {
	for _, o := range q.Options {
		if o == opt {
			return true
		}
	}
	return false
}
