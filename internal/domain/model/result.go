package model

// Analysis is the narrative bundle produced for one model. The lists are
// never nil; Challenges may be empty.
type Analysis struct {
	Strengths       []string `json:"strengths"`
	Challenges      []string `json:"challenges"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
	MatchScore      int      `json:"matchScore"`
}

// MatchResult pairs a model with its fit percentage and narrative.
type MatchResult struct {
	Model    BusinessModel `json:"model"`
	Score    int           `json:"score"`
	Label    string        `json:"label"`
	Analysis Analysis      `json:"analysis"`
}
