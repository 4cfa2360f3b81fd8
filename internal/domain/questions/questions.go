// Package questions holds the fixed quiz catalog and answer validation.
package questions

import "github.com/okian/bizmatch/internal/domain/model"

const (
	scaleMin = 1
	scaleMax = 5
)

func single(id string, c model.Category, prompt string, opts ...string) model.Question {
	return model.Question{ID: id, Prompt: prompt, Type: model.SingleSelect, Category: c, Options: opts}
}

func multi(id string, c model.Category, prompt string, opts ...string) model.Question {
	return model.Question{ID: id, Prompt: prompt, Type: model.MultiSelect, Category: c, Options: opts}
}

func scale(id string, c model.Category, prompt string) model.Question {
	return model.Question{ID: id, Prompt: prompt, Type: model.NumericScale, Category: c, ScaleMin: scaleMin, ScaleMax: scaleMax}
}

var catalog = []model.Question{
	single("motivation", model.CategoryMotivation,
		"What is your main motivation for starting a business?",
		"Financial freedom", "Flexibility and autonomy", "Purpose and impact", "Creativity and passion"),
	single("first-income", model.CategoryMotivation,
		"How soon do you want to earn your first $100?",
		"Under 1 month", "1–3 months", "3–6 months", "No rush"),
	single("target-income", model.CategoryMotivation,
		"What monthly income would make you feel successful 12 months from now?",
		"Less than $500", "$500–$2,000", "$2,000–$5,000", "$5,000+"),
	single("investment", model.CategoryMotivation,
		"How much money are you willing to invest upfront?",
		"$0", "Under $250", "$250–$1,000", "$1,000+"),
	scale("passion-importance", model.CategoryMotivation,
		"How important is it that your business reflects your personal identity or passion?"),
	single("exit-strategy", model.CategoryMotivation,
		"Do you want to eventually sell or exit your business?",
		"Yes", "No", "Not sure"),
	single("business-size", model.CategoryMotivation,
		"How large do you want your business to grow?",
		"Just a side income", "Full-time income", "Multi-6-figure brand", "A widely recognized company"),
	scale("passive-income", model.CategoryMotivation,
		"How important is long-term passive income to you?"),

	single("time-commitment", model.CategoryTimeEffort,
		"How many hours per week can you realistically dedicate to your business?",
		"Less than 5 hours", "5–10 hours", "10–25 hours", "25+ hours"),
	scale("consistency", model.CategoryTimeEffort,
		"How consistent are you with long-term goals?"),
	scale("trial-error", model.CategoryTimeEffort,
		"How do you feel about trial and error?"),
	single("learning-style", model.CategoryTimeEffort,
		"How do you prefer to learn new things?",
		"Hands-on", "Watching tutorials", "Reading/self-study", "One-on-one coaching"),
	scale("routines", model.CategoryTimeEffort,
		"How much do you enjoy building routines or systems?"),
	scale("discouragement", model.CategoryTimeEffort,
		"How discouraged do you get if something doesn't work right away?"),
	single("learning-tools", model.CategoryTimeEffort,
		"Are you willing to learn new tools or software platforms?",
		"Yes", "No"),

	scale("organization", model.CategoryPersonality,
		"How organized are you?"),
	scale("self-motivation", model.CategoryPersonality,
		"How self-motivated are you without external pressure?"),
	scale("uncertainty", model.CategoryPersonality,
		"How well do you handle uncertainty and unclear steps?"),
	single("repetitive-tasks", model.CategoryPersonality,
		"How do you feel about repetitive tasks?",
		"I avoid them", "I tolerate them", "I don't mind them", "I enjoy them"),
	single("work-style", model.CategoryPersonality,
		"Do you prefer working solo or collaborating?",
		"Solo only", "Mostly solo", "Team-oriented", "I like both"),
	scale("public-face", model.CategoryPersonality,
		"How comfortable are you being the face of a brand (e.g., social media, video)?"),
	scale("competitiveness", model.CategoryPersonality,
		"How competitive are you?"),
	scale("creativity", model.CategoryPersonality,
		"How much do you enjoy creative work (design, writing, ideation)?"),
	scale("communication", model.CategoryPersonality,
		"How much do you enjoy direct communication with others (support, coaching, service)?"),
	single("structure", model.CategoryPersonality,
		"How much structure do you prefer in your work?",
		"Clear steps and order", "Some structure", "Mostly flexible", "Total freedom"),

	scale("tech-skills", model.CategoryTools,
		"How would you rate your tech skills overall?"),
	single("workspace", model.CategoryTools,
		"Do you have a consistent, quiet workspace?",
		"Yes", "No"),
	single("support-system", model.CategoryTools,
		"How strong is your personal support system?",
		"None", "One or two people", "A small but helpful group", "Very strong support"),
	scale("internet-access", model.CategoryTools,
		"How reliable is your access to internet and devices?"),
	multi("familiar-tools", model.CategoryTools,
		"Which tools are you already familiar with?",
		"Google Docs/Sheets", "Canva", "Notion", "Shopify/Wix/Squarespace", "Zoom/StreamYard", "None of the above"),

	single("decision-making", model.CategoryStrategy,
		"How do you typically make decisions?",
		"Quickly and instinctively", "After some research", "With a logical process", "After talking to others"),
	scale("risk-tolerance", model.CategoryStrategy,
		"How comfortable are you taking risks?"),
	scale("feedback-response", model.CategoryStrategy,
		"How do you usually respond to negative feedback or rejection?"),
	single("path-preference", model.CategoryStrategy,
		"Do you prefer following proven paths or creating your own?",
		"Proven paths", "A mix", "Mostly original", "I want to build something new"),
	scale("control", model.CategoryStrategy,
		"How important is it for you to stay in full control of your business decisions?"),

	single("online-presence", model.CategoryBusinessFit,
		"Are you comfortable having your face and voice online?",
		"Yes", "No"),
	single("client-calls", model.CategoryBusinessFit,
		"Would you be okay talking to clients on Zoom or by phone?",
		"Yes", "No"),
	single("physical-shipping", model.CategoryBusinessFit,
		"Would you be open to shipping physical products from your location?",
		"Yes", "No"),
	single("work-preference", model.CategoryBusinessFit,
		"Would you rather:",
		"Create once, earn passively", "Work consistently with people", "Mix of both"),
	scale("social-media", model.CategoryBusinessFit,
		"How interested are you in using social media to grow a business?"),
	single("ecosystem", model.CategoryBusinessFit,
		"Do you want to be part of an ecosystem (e.g., platforms, marketplaces, affiliate networks)?",
		"Yes", "No", "Maybe"),
	single("audience", model.CategoryBusinessFit,
		"Do you currently have any kind of audience or following?",
		"Yes, highly engaged", "Yes, but small", "No", "Just starting"),
	single("promoting-others", model.CategoryBusinessFit,
		"Would you be open to promoting someone else's product/service?",
		"Yes", "No"),
	single("teach-or-solve", model.CategoryBusinessFit,
		"Would you prefer to teach others or solve problems for them?",
		"Teach", "Solve", "Both", "Neither"),
	scale("meaningful-work", model.CategoryBusinessFit,
		"How important is it to you that your business contributes to something meaningful?"),
}

var byID = func() map[string]int {
	idx := make(map[string]int, len(catalog))
	for i, q := range catalog {
		idx[q.ID] = i
	}
	return idx
}()

// All returns every question in quiz order.
func All() []model.Question {
	out := make([]model.Question, len(catalog))
	for i, q := range catalog {
		out[i] = clone(q)
	}
	return out
}

// ByID looks up a question.
func ByID(id string) (model.Question, bool) {
	i, ok := byID[id]
	if !ok {
		return model.Question{}, false
	}
	return clone(catalog[i]), true
}

// ByCategory returns the questions of one round in quiz order.
func ByCategory(c model.Category) []model.Question {
	out := make([]model.Question, 0, 10)
	for _, q := range catalog {
		if q.Category == c {
			out = append(out, clone(q))
		}
	}
	return out
}

// Count returns the catalog size.
func Count() int { return len(catalog) }

func clone(q model.Question) model.Question {
	if q.Options != nil {
		q.Options = append([]string(nil), q.Options...)
	}
	return q
}
