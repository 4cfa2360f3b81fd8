// Package narrative turns answers into human readable commentary about a
// business model.
package narrative

import (
	"github.com/okian/bizmatch/internal/domain/model"
)

const (
	baseScore = 50
	minScore  = 20
	maxScore  = 100
)

// Filler sentences used when a list would otherwise be empty.
const (
	FallbackStrength       = "This business model offers good opportunities for your profile"
	FallbackInsight        = "This business provides a balanced approach to building income"
	FallbackRecommendation = "Focus on your existing strengths while developing new skills gradually"
)

// Analyzer produces the narrative bundle for one model.
type Analyzer interface {
	Analyze(answers model.AnswerSet, m model.BusinessModel) model.Analysis
}

// Outcome is what a matching rule contributes. Empty sentences are skipped.
type Outcome struct {
	Delta          int
	Strength       string
	Challenge      string
	Insight        string
	Recommendation string
}

// Rule inspects answers and a model and reports an outcome when it fires.
type Rule struct {
	Name  string
	Check func(a model.AnswerSet, m model.BusinessModel) (Outcome, bool)
}

// Option applies a configuration option to the RuleAnalyzer.
type Option func(*RuleAnalyzer)

// WithRules replaces the rule table.
func WithRules(rules ...Rule) Option {
	return func(r *RuleAnalyzer) {
		if len(rules) > 0 {
			r.rules = append([]Rule(nil), rules...)
		}
	}
}

// RuleAnalyzer implements Analyzer over an ordered rule table.
type RuleAnalyzer struct {
	rules []Rule
}

// NewRuleAnalyzer creates an analyzer using the default rule table.
func NewRuleAnalyzer(opts ...Option) *RuleAnalyzer {
	r := &RuleAnalyzer{rules: DefaultRules()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Analyze runs every rule in order. Strengths, insights and recommendations
// always hold at least one sentence; challenges may be empty.
func (r *RuleAnalyzer) Analyze(answers model.AnswerSet, m model.BusinessModel) model.Analysis {
	out := model.Analysis{
		Strengths:       []string{},
		Challenges:      []string{},
		Insights:        []string{},
		Recommendations: []string{},
	}
	score := baseScore
	for _, rule := range r.rules {
		o, ok := rule.Check(answers, m)
		if !ok {
			continue
		}
		score += o.Delta
		out.Strengths = appendNonEmpty(out.Strengths, o.Strength)
		out.Challenges = appendNonEmpty(out.Challenges, o.Challenge)
		out.Insights = appendNonEmpty(out.Insights, o.Insight)
		out.Recommendations = appendNonEmpty(out.Recommendations, o.Recommendation)
	}

	if len(out.Strengths) == 0 {
		out.Strengths = append(out.Strengths, FallbackStrength)
	}
	if len(out.Insights) == 0 {
		out.Insights = append(out.Insights, FallbackInsight)
	}
	if len(out.Recommendations) == 0 {
		out.Recommendations = append(out.Recommendations, FallbackRecommendation)
	}

	out.MatchScore = min(maxScore, max(minScore, score))
	return out
}

func appendNonEmpty(list []string, s string) []string {
	if s == "" {
		return list
	}
	return append(list, s)
}

// Label names a percentage band.
func Label(score int) string {
	switch {
	case score >= 80:
		return "Excellent Match"
	case score >= 60:
		return "Good Match"
	case score >= 40:
		return "Fair Match"
	default:
		return "Needs Work"
	}
}
