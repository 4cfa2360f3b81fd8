// Package scoring computes how well a set of answers fits a business model.
package scoring

import (
	"github.com/okian/bizmatch/internal/domain/model"
)

// Percentage bounds. A score of 0 is reserved for "nothing answered".
const (
	minPercentage = 25
	maxPercentage = 100
)

// Scorer computes a fit percentage for one business model.
type Scorer interface {
	// Score returns a value in [25,100], or 0 when no factor was answered.
	Score(answers model.AnswerSet, m model.BusinessModel) int
}

// Factor is one weighted criterion. A factor whose Applies returns false is
// left out of both the earned points and the total weight.
type Factor struct {
	Name        string
	QuestionIDs []string
	Weight      int
	Applies     func(a model.AnswerSet) bool
	Credit      func(a model.AnswerSet, m model.BusinessModel) int
}

// FactorScore is the outcome of a single factor for one model. QuestionIDs
// lists the questions the factor reads.
type FactorScore struct {
	Name        string   `json:"name"`
	QuestionIDs []string `json:"questionIds"`
	Weight      int      `json:"weight"`
	Credit      int      `json:"credit"`
	Applied     bool     `json:"applied"`
}

// Option applies a configuration option to the WeightedScorer.
type Option func(*WeightedScorer)

// WithFactors replaces the factor table.
func WithFactors(factors ...Factor) Option {
	return func(s *WeightedScorer) {
		if len(factors) > 0 {
			s.factors = append([]Factor(nil), factors...)
		}
	}
}

// WeightedScorer implements Scorer over an ordered factor table.
type WeightedScorer struct {
	factors []Factor
}

// NewWeightedScorer creates a scorer using the default factor table.
func NewWeightedScorer(opts ...Option) *WeightedScorer {
	s := &WeightedScorer{
		factors: DefaultFactors(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Score computes the fit percentage of m for the given answers.
func (s *WeightedScorer) Score(answers model.AnswerSet, m model.BusinessModel) int {
	earned, total := 0, 0
	for _, f := range s.factors {
		if !f.Applies(answers) {
			continue
		}
		earned += clampCredit(f.Credit(answers, m), f.Weight)
		total += f.Weight
	}
	return Percentage(earned, total)
}

// Breakdown reports every factor's contribution, applied or not.
func (s *WeightedScorer) Breakdown(answers model.AnswerSet, m model.BusinessModel) []FactorScore {
	out := make([]FactorScore, 0, len(s.factors))
	for _, f := range s.factors {
		fs := FactorScore{
			Name:        f.Name,
			QuestionIDs: append([]string{}, f.QuestionIDs...),
			Weight:      f.Weight,
		}
		if f.Applies(answers) {
			fs.Applied = true
			fs.Credit = clampCredit(f.Credit(answers, m), f.Weight)
		}
		out = append(out, fs)
	}
	return out
}

// Percentage converts earned points over total weight into a rounded
// percentage clamped to [25,100]. A zero total yields 0.
func Percentage(earned, total int) int {
	if total <= 0 {
		return 0
	}
	// round half up in integer arithmetic
	p := (200*earned + total) / (2 * total)
	if p < minPercentage {
		return minPercentage
	}
	if p > maxPercentage {
		return maxPercentage
	}
	return p
}

func clampCredit(credit, weight int) int {
	if credit < 0 {
		return 0
	}
	if credit > weight {
		return weight
	}
	return credit
}
