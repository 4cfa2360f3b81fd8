package model

import "strings"

// Difficulty is the skill tier a business model targets.
type Difficulty string

// Difficulty tiers.
const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

// ParseDifficulty matches a tier name regardless of case.
func ParseDifficulty(s string) (Difficulty, bool) {
	for _, d := range []Difficulty{Beginner, Intermediate, Advanced} {
		if strings.EqualFold(string(d), strings.TrimSpace(s)) {
			return d, true
		}
	}
	return "", false
}

// Scalability describes how far a business can grow.
type Scalability string

// Scalability levels.
const (
	ScalabilityLow      Scalability = "Low"
	ScalabilityMedium   Scalability = "Medium"
	ScalabilityHigh     Scalability = "High"
	ScalabilityVeryHigh Scalability = "Very High"
)

// MoneyRange is a whole-dollar range parsed from text such as "$500-$5,000/month".
// OpenEnded marks a trailing "+" on the upper bound.
type MoneyRange struct {
	Min       int  `json:"min"`
	Max       int  `json:"max"`
	OpenEnded bool `json:"openEnded,omitempty"`
}

// Overlaps reports whether the range intersects [lo, hi].
func (r MoneyRange) Overlaps(lo, hi int) bool {
	return r.Min <= hi && (r.OpenEnded || r.Max >= lo)
}

// Reaches reports whether the range extends to at least amount.
func (r MoneyRange) Reaches(amount int) bool {
	return r.OpenEnded || r.Max >= amount
}

// HourRange is a weekly hour range parsed from text such as "10-40 hours/week".
type HourRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// BusinessModel is a read-only catalog entry. Investment, Income and
// WeeklyHours are derived from the text fields when the catalog loads.
type BusinessModel struct {
	ID                  string      `json:"id" koanf:"id"`
	Title               string      `json:"title" koanf:"title"`
	Description         string      `json:"description" koanf:"description"`
	DetailedDescription string      `json:"detailedDescription,omitempty" koanf:"detailed_description"`
	Difficulty          Difficulty  `json:"difficulty" koanf:"difficulty"`
	Category            string      `json:"category" koanf:"category"`
	TimeToStart         string      `json:"timeToStart" koanf:"time_to_start"`
	InitialInvestment   string      `json:"initialInvestment" koanf:"initial_investment"`
	PotentialIncome     string      `json:"potentialIncome" koanf:"potential_income"`
	Pros                []string    `json:"pros" koanf:"pros"`
	Cons                []string    `json:"cons" koanf:"cons"`
	RequiredSkills      []string    `json:"skills" koanf:"skills"`
	TimeCommitment      string      `json:"timeCommitment" koanf:"time_commitment"`
	Scalability         Scalability `json:"scalability" koanf:"scalability"`

	Investment  MoneyRange `json:"investment" koanf:"-"`
	Income      MoneyRange `json:"income" koanf:"-"`
	WeeklyHours HourRange  `json:"weeklyHours" koanf:"-"`
}

// HasSkill reports whether skill is listed verbatim in RequiredSkills.
func (m BusinessModel) HasSkill(skill string) bool {
	for _, s := range m.RequiredSkills {
		if s == skill {
			return true
		}
	}
	return false
}

// Section is one block of a detailed description: an optional header
// followed by paragraphs or labelled bullets.
type Section struct {
	Header  string   `json:"header,omitempty"`
	Text    string   `json:"text,omitempty"`
	Bullets []Bullet `json:"bullets,omitempty"`
}

// Bullet is a "Label: text" line from a detailed description.
type Bullet struct {
	Label string `json:"label,omitempty"`
	Text  string `json:"text"`
}
