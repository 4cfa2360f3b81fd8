// Package profile summarizes a user's answers for display next to results.
package profile

import (
	"fmt"
	"strconv"

	"github.com/okian/bizmatch/internal/domain/model"
)

const notSpecified = "Not specified"

// Profile is a short, display-ready digest of the answers.
type Profile struct {
	Motivation        string   `json:"motivation"`
	TimeCommitment    string   `json:"timeCommitment"`
	PersonalityTraits []string `json:"personalityTraits"`
	RiskTolerance     string   `json:"riskTolerance"`
	TechSkills        string   `json:"techSkills"`
	Answered          int      `json:"answered"`
}

// Summarize builds a Profile. Unanswered text questions read "Not specified"
// and unanswered scale questions read 0/5.
func Summarize(answers model.AnswerSet) Profile {
	return Profile{
		Motivation:     textOr(answers, "motivation"),
		TimeCommitment: textOr(answers, "time-commitment"),
		PersonalityTraits: []string{
			"Organization: " + outOfFive(answers, "organization"),
			"Self-motivation: " + outOfFive(answers, "self-motivation"),
			"Risk tolerance: " + outOfFive(answers, "risk-tolerance"),
			"Creativity: " + outOfFive(answers, "creativity"),
		},
		RiskTolerance: outOfFive(answers, "risk-tolerance"),
		TechSkills:    outOfFive(answers, "tech-skills"),
		Answered:      answers.Len(),
	}
}

func textOr(a model.AnswerSet, id string) string {
	if t, ok := a.Text(id); ok {
		return t
	}
	return notSpecified
}

func outOfFive(a model.AnswerSet, id string) string {
	return fmt.Sprintf("%s/5", strconv.FormatFloat(a.Scale(id), 'f', -1, 64))
}
