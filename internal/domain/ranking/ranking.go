// Package ranking orders business models by fit and attaches the narrative
// for the ones shown.
package ranking

import (
	"sort"

	"github.com/okian/bizmatch/internal/domain/model"
	"github.com/okian/bizmatch/internal/domain/narrative"
	"github.com/okian/bizmatch/internal/domain/scoring"
)

// DefaultLimit is how many recommendations are returned when no limit is set.
const DefaultLimit = 4

// Option applies a configuration option to the Ranker.
type Option func(*Ranker)

// WithLimit sets the default number of results.
func WithLimit(n int) Option {
	return func(r *Ranker) {
		if n > 0 {
			r.limit = n
		}
	}
}

// WithScorer overrides the scorer.
func WithScorer(s scoring.Scorer) Option {
	return func(r *Ranker) {
		if s != nil {
			r.scorer = s
		}
	}
}

// WithAnalyzer overrides the narrative analyzer.
func WithAnalyzer(a narrative.Analyzer) Option {
	return func(r *Ranker) {
		if a != nil {
			r.analyzer = a
		}
	}
}

// Ranker scores a catalog and keeps the best matches. It holds no mutable
// state and is safe for concurrent use.
type Ranker struct {
	scorer   scoring.Scorer
	analyzer narrative.Analyzer
	limit    int
}

// NewRanker creates a ranker with the default scorer, analyzer and limit.
func NewRanker(opts ...Option) *Ranker {
	r := &Ranker{
		scorer:   scoring.NewWeightedScorer(),
		analyzer: narrative.NewRuleAnalyzer(),
		limit:    DefaultLimit,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Limit returns the default result count.
func (r *Ranker) Limit() int { return r.limit }

// Rank returns the top results using the default limit.
func (r *Ranker) Rank(answers model.AnswerSet, models []model.BusinessModel) []model.MatchResult {
	return r.RankN(answers, models, r.limit)
}

// RankN scores every model, sorts by score descending keeping input order
// among ties, and returns at most n results with their narrative attached.
// A non-positive n falls back to the default limit.
func (r *Ranker) RankN(answers model.AnswerSet, models []model.BusinessModel, n int) []model.MatchResult {
	if n <= 0 {
		n = r.limit
	}
	type scored struct {
		model model.BusinessModel
		score int
	}
	all := make([]scored, 0, len(models))
	for _, m := range models {
		all = append(all, scored{model: m, score: r.scorer.Score(answers, m)})
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].score > all[j].score })

	if len(all) > n {
		all = all[:n]
	}
	out := make([]model.MatchResult, 0, len(all))
	for _, s := range all {
		out = append(out, r.result(answers, s.model, s.score))
	}
	return out
}

// Detail scores a single model. The score equals the one Rank reports for
// the same answers and model.
func (r *Ranker) Detail(answers model.AnswerSet, m model.BusinessModel) model.MatchResult {
	return r.result(answers, m, r.scorer.Score(answers, m))
}

// result builds a MatchResult whose analysis carries the scorer's value in
// place of the analyzer's own estimate.
func (r *Ranker) result(answers model.AnswerSet, m model.BusinessModel, score int) model.MatchResult {
	analysis := r.analyzer.Analyze(answers, m)
	analysis.MatchScore = score
	return model.MatchResult{
		Model:    m,
		Score:    score,
		Label:    narrative.Label(score),
		Analysis: analysis,
	}
}
