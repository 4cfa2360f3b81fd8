package loadtest

import (
	"math/rand/v2"

	"github.com/okian/bizmatch/internal/domain/model"
	"github.com/okian/bizmatch/internal/domain/questions"
)

// skipChance is the probability that a question is left unanswered.
const skipChance = 0.3

// generateScenarios builds n answer sets that always pass validation.
// The same seed yields the same scenarios.
func generateScenarios(n int, seed uint64) []Scenario {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	qs := questions.All()

	out := make([]Scenario, n)
	for i := range out {
		answers := make([]model.Answer, 0, len(qs))
		for _, q := range qs {
			if rng.Float64() < skipChance {
				continue
			}
			answers = append(answers, model.Answer{QuestionID: q.ID, Value: randomValue(rng, q)})
		}
		out[i] = Scenario{Index: i, Answers: answers}
	}
	return out
}

func randomValue(rng *rand.Rand, q model.Question) model.AnswerValue {
	switch q.Type {
	case model.NumericScale:
		return model.Number(float64(q.ScaleMin + rng.IntN(q.ScaleMax-q.ScaleMin+1)))
	case model.MultiSelect:
		picked := make([]string, 0, len(q.Options))
		for _, opt := range q.Options {
			if rng.IntN(2) == 0 {
				picked = append(picked, opt)
			}
		}
		return model.List(picked...)
	default:
		return model.Text(q.Options[rng.IntN(len(q.Options))])
	}
}
