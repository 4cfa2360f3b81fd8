package scoring

import (
	"strings"

	"github.com/okian/bizmatch/internal/domain/model"
)

// Question ids read by the factor table.
const (
	qTimeCommitment = "time-commitment"
	qInvestment     = "investment"
	qTargetIncome   = "target-income"
	qTechSkills     = "tech-skills"
	qRiskTolerance  = "risk-tolerance"
	qCommunication  = "communication"
	qClientCalls    = "client-calls"
	qCreativity     = "creativity"
	qSocialMedia    = "social-media"
	qPassiveIncome  = "passive-income"
	qSelfMotivation = "self-motivation"
	qOrganization   = "organization"
)

var (
	socialMediaModels   = []string{"social-media-management", "content-creation-influencing"}
	passiveIncomeModels = []string{
		"affiliate-marketing",
		"online-course",
		"print-on-demand",
		"digital-product-creation",
		"investing-trading",
	}
)

// DefaultFactors returns the fixed factor table in evaluation order.
func DefaultFactors() []Factor {
	return []Factor{
		{Name: "time commitment", QuestionIDs: []string{qTimeCommitment}, Weight: 15, Applies: textAnswered(qTimeCommitment), Credit: timeCredit},
		{Name: "investment", QuestionIDs: []string{qInvestment}, Weight: 12, Applies: textAnswered(qInvestment), Credit: investmentCredit},
		{Name: "target income", QuestionIDs: []string{qTargetIncome}, Weight: 10, Applies: textAnswered(qTargetIncome), Credit: incomeCredit},
		{Name: "tech skills", QuestionIDs: []string{qTechSkills}, Weight: 10, Applies: scaleAnswered(qTechSkills), Credit: techCredit},
		{Name: "risk tolerance", QuestionIDs: []string{qRiskTolerance}, Weight: 8, Applies: scaleAnswered(qRiskTolerance), Credit: riskCredit},
		{Name: "communication", QuestionIDs: []string{qCommunication, qClientCalls}, Weight: 8, Applies: communicationApplies, Credit: communicationCredit},
		{Name: "creativity", QuestionIDs: []string{qCreativity}, Weight: 7, Applies: scaleAnswered(qCreativity), Credit: creativityCredit},
		{Name: "social media", QuestionIDs: []string{qSocialMedia}, Weight: 6, Applies: scaleAnswered(qSocialMedia), Credit: socialMediaCredit},
		{Name: "passive income", QuestionIDs: []string{qPassiveIncome}, Weight: 6, Applies: scaleAnswered(qPassiveIncome), Credit: passiveIncomeCredit},
		{Name: "self-motivation", QuestionIDs: []string{qSelfMotivation}, Weight: 5, Applies: scaleAnswered(qSelfMotivation), Credit: selfMotivationCredit},
		{Name: "organization", QuestionIDs: []string{qOrganization}, Weight: 4, Applies: scaleAnswered(qOrganization), Credit: organizationCredit},
	}
}

func textAnswered(id string) func(model.AnswerSet) bool {
	return func(a model.AnswerSet) bool {
		_, ok := a.Text(id)
		return ok
	}
}

func scaleAnswered(id string) func(model.AnswerSet) bool {
	return func(a model.AnswerSet) bool {
		return a.Scale(id) > 0
	}
}

func communicationApplies(a model.AnswerSet) bool {
	_, calls := a.Text(qClientCalls)
	return a.Scale(qCommunication) > 0 || calls
}

// tiered returns the credit of the first threshold v reaches, else fallback.
func tiered(v float64, fallback int, tiers ...tier) int {
	for _, t := range tiers {
		if v >= t.atLeast {
			return t.credit
		}
	}
	return fallback
}

type tier struct {
	atLeast float64
	credit  int
}

func timeCredit(a model.AnswerSet, m model.BusinessModel) int {
	t, _ := a.Text(qTimeCommitment)
	switch m.Difficulty {
	case model.Beginner:
		switch t {
		case "Less than 5 hours", "5–10 hours":
			return 15
		case "10–25 hours":
			return 10
		}
		return 5
	case model.Intermediate:
		switch t {
		case "10–25 hours", "25+ hours":
			return 15
		case "5–10 hours":
			return 8
		}
		return 3
	default:
		switch t {
		case "25+ hours":
			return 15
		case "10–25 hours":
			return 10
		}
		return 2
	}
}

func investmentCredit(a model.AnswerSet, m model.BusinessModel) int {
	inv, _ := a.Text(qInvestment)
	r := m.Investment
	switch inv {
	case "$0":
		if r.Min <= 100 {
			return 12
		}
		return 2
	case "Under $250":
		if r.Overlaps(100, 500) {
			return 12
		}
		if r.Min == 0 {
			return 10
		}
		return 4
	case "$250–$1,000":
		if r.Overlaps(500, 1000) {
			return 12
		}
		return 6
	default:
		if r.Reaches(1000) {
			return 12
		}
		return 4
	}
}

func incomeCredit(a model.AnswerSet, m model.BusinessModel) int {
	target, _ := a.Text(qTargetIncome)
	r := m.Income
	switch target {
	case "Less than $500":
		if r.Min <= 500 {
			return 10
		}
		return 6
	case "$500–$2,000":
		if r.Overlaps(500, 2000) {
			return 10
		}
		return 5
	case "$2,000–$5,000":
		if r.Overlaps(2000, 5000) {
			return 10
		}
		return 6
	default:
		if r.Reaches(5000) {
			return 10
		}
		return 4
	}
}

func techCredit(a model.AnswerSet, m model.BusinessModel) int {
	v := a.Scale(qTechSkills)
	skills := strings.ToLower(strings.Join(m.RequiredSkills, " "))
	switch {
	case containsAny(skills, "programming", "development", "technical"):
		return tiered(v, 2, tier{4, 10}, tier{3, 6})
	case containsAny(skills, "marketing", "social media", "design"):
		return tiered(v, 4, tier{3, 10}, tier{2, 7})
	default:
		return tiered(v, 8, tier{2, 10})
	}
}

func riskCredit(a model.AnswerSet, m model.BusinessModel) int {
	v := a.Scale(qRiskTolerance)
	switch {
	case m.Category == "Finance" || m.Scalability == model.ScalabilityHigh:
		return tiered(v, 2, tier{4, 8}, tier{3, 5})
	case m.Difficulty == model.Advanced:
		return tiered(v, 3, tier{3, 8}, tier{2, 6})
	default:
		return tiered(v, 6, tier{2, 8})
	}
}

func communicationCredit(a model.AnswerSet, m model.BusinessModel) int {
	comm := a.Scale(qCommunication)
	calls, _ := a.Text(qClientCalls)
	direct := false
	for _, s := range m.RequiredSkills {
		if containsAny(strings.ToLower(s), "communication", "customer service", "teaching", "sales") {
			direct = true
			break
		}
	}
	if direct {
		switch {
		case comm >= 4 && calls == "Yes":
			return 8
		case comm >= 3:
			return 6
		case calls == "Yes":
			return 4
		}
		return 2
	}
	if comm <= 2 && calls == "No" {
		return 8
	}
	return 6
}

func creativityCredit(a model.AnswerSet, m model.BusinessModel) int {
	v := a.Scale(qCreativity)
	if m.Category == "Creative" {
		return tiered(v, 2, tier{4, 7}, tier{3, 5})
	}
	return tiered(v, 5, tier{3, 7})
}

func socialMediaCredit(a model.AnswerSet, m model.BusinessModel) int {
	v := a.Scale(qSocialMedia)
	if oneOf(m.ID, socialMediaModels) {
		return tiered(v, 1, tier{4, 6}, tier{3, 4})
	}
	return tiered(v, 4, tier{3, 6})
}

func passiveIncomeCredit(a model.AnswerSet, m model.BusinessModel) int {
	v := a.Scale(qPassiveIncome)
	if oneOf(m.ID, passiveIncomeModels) {
		return tiered(v, 2, tier{4, 6}, tier{3, 4})
	}
	if v <= 2 {
		return 6
	}
	return 4
}

func selfMotivationCredit(a model.AnswerSet, _ model.BusinessModel) int {
	return tiered(a.Scale(qSelfMotivation), 2, tier{4, 5}, tier{3, 4})
}

func organizationCredit(a model.AnswerSet, m model.BusinessModel) int {
	v := a.Scale(qOrganization)
	if m.Difficulty == model.Advanced || m.Category == "Service" {
		return tiered(v, 1, tier{4, 4}, tier{3, 3})
	}
	return tiered(v, 3, tier{3, 4})
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func oneOf(id string, ids []string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
