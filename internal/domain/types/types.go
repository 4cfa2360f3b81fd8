// Package types contains response shapes shared by the service, HTTP API and CLI.
package types

import (
	"strings"

	"github.com/okian/bizmatch/internal/domain/model"
	"github.com/okian/bizmatch/internal/domain/profile"
	"github.com/okian/bizmatch/internal/domain/scoring"
)

// SessionCreated is returned when a questionnaire session starts.
type SessionCreated struct {
	SessionID string `json:"session_id"`
}

// ModelSummary is the catalog listing view of a business model.
type ModelSummary struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	Description       string            `json:"description"`
	Difficulty        model.Difficulty  `json:"difficulty"`
	Category          string            `json:"category"`
	TimeToStart       string            `json:"timeToStart"`
	InitialInvestment string            `json:"initialInvestment"`
	PotentialIncome   string            `json:"potentialIncome"`
	TimeCommitment    string            `json:"timeCommitment"`
	Scalability       model.Scalability `json:"scalability"`
}

// Summarize returns the listing view of m.
func Summarize(m model.BusinessModel) ModelSummary {
	return ModelSummary{
		ID:                m.ID,
		Title:             m.Title,
		Description:       m.Description,
		Difficulty:        m.Difficulty,
		Category:          m.Category,
		TimeToStart:       m.TimeToStart,
		InitialInvestment: m.InitialInvestment,
		PotentialIncome:   m.PotentialIncome,
		TimeCommitment:    m.TimeCommitment,
		Scalability:       m.Scalability,
	}
}

// ModelFilter narrows the catalog listing. Empty fields match every model
// and comparisons ignore case.
type ModelFilter struct {
	Category   string
	Difficulty model.Difficulty
}

// Matches reports whether m passes the filter.
func (f ModelFilter) Matches(m model.BusinessModel) bool {
	if f.Category != "" && !strings.EqualFold(f.Category, m.Category) {
		return false
	}
	return f.Difficulty == "" || f.Difficulty == m.Difficulty
}

// ModelPage is the catalog view of one model, readable before any answers
// exist.
type ModelPage struct {
	ModelSummary
	Pros           []string        `json:"pros"`
	Cons           []string        `json:"cons"`
	RequiredSkills []string        `json:"skills"`
	Sections       []model.Section `json:"sections"`
}

// NewModelPage combines the listing view of m with its parsed sections.
func NewModelPage(m model.BusinessModel, sections []model.Section) ModelPage {
	return ModelPage{
		ModelSummary:   Summarize(m),
		Pros:           m.Pros,
		Cons:           m.Cons,
		RequiredSkills: m.RequiredSkills,
		Sections:       sections,
	}
}

// Recommendation is one ranked entry; Rank starts at 1.
type Recommendation struct {
	Rank int `json:"rank"`
	model.MatchResult
}

// Report is the full recommendation response for a session.
type Report struct {
	SessionID       string           `json:"session_id,omitempty"`
	Profile         profile.Profile  `json:"profile"`
	Recommendations []Recommendation `json:"recommendations"`
}

// NewReport numbers results in order.
func NewReport(sessionID string, p profile.Profile, results []model.MatchResult) Report {
	recs := make([]Recommendation, len(results))
	for i, r := range results {
		recs[i] = Recommendation{Rank: i + 1, MatchResult: r}
	}
	return Report{SessionID: sessionID, Profile: p, Recommendations: recs}
}

// ModelDetail is the single-model view with the parsed long description
// and the per-factor breakdown behind the score.
type ModelDetail struct {
	model.MatchResult
	Sections  []model.Section       `json:"sections"`
	Breakdown []scoring.FactorScore `json:"breakdown"`
}
