package narrative

import (
	"strings"

	"github.com/okian/bizmatch/internal/domain/model"
)

// neutral stands in for scale questions that were not answered.
const neutral = 3

// heavyWeeklyHours is the minimum weekly load that counts as time intensive.
const heavyWeeklyHours = 20

// DefaultRules returns the rule table in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "time", Check: timeRule},
		{Name: "investment", Check: investmentRule},
		{Name: "tech skills", Check: techRule},
		{Name: "communication", Check: communicationRule},
		{Name: "creativity", Check: creativityRule},
		{Name: "motivation", Check: motivationRule},
		{Name: "risk", Check: riskRule},
		{Name: "discipline", Check: disciplineRule},
		{Name: "work style", Check: workStyleRule},
		{Name: "timeline", Check: timelineRule},
	}
}

func scaleOrNeutral(a model.AnswerSet, id string) float64 {
	if v := a.Scale(id); v != 0 {
		return v
	}
	return neutral
}

func textContains(a model.AnswerSet, id, sub string) bool {
	t, ok := a.Text(id)
	return ok && strings.Contains(t, sub)
}

func timeRule(a model.AnswerSet, m model.BusinessModel) (Outcome, bool) {
	if m.WeeklyHours.Min < heavyWeeklyHours {
		return Outcome{}, false
	}
	switch {
	case textContains(a, "time-commitment", "25+"):
		return Outcome{Delta: 15, Strength: "Your available time aligns perfectly with this business model"}, true
	case textContains(a, "time-commitment", "Less than 5"):
		return Outcome{
			Delta:          -10,
			Challenge:      "This business requires more time than you currently have available",
			Recommendation: "Consider starting part-time and gradually increasing your commitment",
		}, true
	}
	return Outcome{}, false
}

func investmentRule(a model.AnswerSet, m model.BusinessModel) (Outcome, bool) {
	inv, _ := a.Text("investment")
	switch {
	case inv == "$0" && m.Investment.Min == 0:
		return Outcome{Delta: 10, Strength: "Perfect fit - this business requires no upfront investment"}, true
	case strings.Contains(inv, "$1,000+") && m.Investment.Min >= 500:
		return Outcome{Delta: 5, Strength: "Your investment budget supports this business model"}, true
	}
	return Outcome{}, false
}

// techSkillMarkers identify required skills that call for technical comfort.
var techSkillMarkers = []string{"tech", "web", "programming", "software", "coding"}

func requiresTechSkills(m model.BusinessModel) bool {
	for _, skill := range m.RequiredSkills {
		lower := strings.ToLower(skill)
		for _, marker := range techSkillMarkers {
			if strings.Contains(lower, marker) {
				return true
			}
		}
	}
	return false
}

func techRule(a model.AnswerSet, m model.BusinessModel) (Outcome, bool) {
	if !requiresTechSkills(m) {
		return Outcome{}, false
	}
	switch v := scaleOrNeutral(a, "tech-skills"); {
	case v >= 4:
		return Outcome{Delta: 10, Strength: "Your strong tech skills give you a significant advantage"}, true
	case v <= 2:
		return Outcome{
			Delta:          -5,
			Challenge:      "This business requires technical skills you may need to develop",
			Recommendation: "Consider taking online courses to improve your technical abilities",
		}, true
	}
	return Outcome{}, false
}

func communicationRule(a model.AnswerSet, m model.BusinessModel) (Outcome, bool) {
	if !m.HasSkill("Communication") {
		return Outcome{}, false
	}
	switch v := scaleOrNeutral(a, "communication"); {
	case v >= 4:
		return Outcome{Delta: 10, Strength: "Your communication skills are perfectly suited for this business"}, true
	case v <= 2:
		return Outcome{
			Challenge:      "This business involves significant client interaction",
			Recommendation: "Practice your communication skills or consider written-first approaches",
		}, true
	}
	return Outcome{}, false
}

func creativityRule(a model.AnswerSet, m model.BusinessModel) (Outcome, bool) {
	if m.Category == "Creative" && scaleOrNeutral(a, "creativity") >= 4 {
		return Outcome{Delta: 15, Strength: "Your creative abilities are a perfect match for this business type"}, true
	}
	return Outcome{}, false
}

func motivationRule(a model.AnswerSet, m model.BusinessModel) (Outcome, bool) {
	switch {
	case textContains(a, "motivation", "Financial freedom") && m.Income.Reaches(5000):
		return Outcome{Delta: 5, Insight: "This business has the income potential to support your financial goals"}, true
	case textContains(a, "motivation", "Purpose") && m.Category == "Education":
		return Outcome{Delta: 10, Insight: "This business aligns with your desire to make a meaningful impact"}, true
	}
	return Outcome{}, false
}

func riskRule(a model.AnswerSet, m model.BusinessModel) (Outcome, bool) {
	v := scaleOrNeutral(a, "risk-tolerance")
	switch {
	case v <= 2 && m.Investment.Min == 0:
		return Outcome{Delta: 5, Insight: "The low financial risk matches your cautious approach"}, true
	case v >= 4 && m.Scalability == model.ScalabilityHigh:
		return Outcome{Delta: 5, Insight: "Your comfort with risk positions you well for high-growth opportunities"}, true
	}
	return Outcome{}, false
}

func disciplineRule(a model.AnswerSet, _ model.BusinessModel) (Outcome, bool) {
	consistency := scaleOrNeutral(a, "consistency")
	drive := scaleOrNeutral(a, "self-motivation")
	switch {
	case consistency >= 4 && drive >= 4:
		return Outcome{Delta: 10, Strength: "Your consistency and self-motivation are key success factors"}, true
	case consistency <= 2 || drive <= 2:
		return Outcome{
			Challenge:      "This business requires consistent effort and self-discipline",
			Recommendation: "Set up accountability systems and start with small, manageable goals",
		}, true
	}
	return Outcome{}, false
}

func workStyleRule(a model.AnswerSet, m model.BusinessModel) (Outcome, bool) {
	if textContains(a, "work-style", "Solo") && !m.HasSkill("Team coordination") {
		return Outcome{Delta: 5, Insight: "This business allows you to work independently, matching your preference"}, true
	}
	return Outcome{}, false
}

func timelineRule(a model.AnswerSet, m model.BusinessModel) (Outcome, bool) {
	if textContains(a, "first-income", "Under 1 month") && !strings.Contains(m.TimeToStart, "1-2 weeks") {
		return Outcome{
			Challenge:      "Your income timeline may be optimistic for this business model",
			Recommendation: "Allow more time for initial setup and first sales",
		}, true
	}
	return Outcome{}, false
}
