package ranking_test

import (
	"testing"

	"github.com/okian/bizmatch/internal/domain/catalog"
	"github.com/okian/bizmatch/internal/domain/model"
	"github.com/okian/bizmatch/internal/domain/ranking"
	"github.com/okian/bizmatch/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

type fixedScorer map[string]int

func (f fixedScorer) Score(_ model.AnswerSet, m model.BusinessModel) int { return f[m.ID] }

func models(ids ...string) []model.BusinessModel {
	out := make([]model.BusinessModel, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.BusinessModel{ID: id, Title: id})
	}
	return out
}

func sampleAnswers() model.AnswerSet {
	return model.NewAnswerSet([]model.Answer{
		{QuestionID: "time-commitment", Value: model.Text("10–25 hours")},
		{QuestionID: "investment", Value: model.Text("Under $250")},
		{QuestionID: "target-income", Value: model.Text("$2,000–$5,000")},
		{QuestionID: "tech-skills", Value: model.Number(4)},
		{QuestionID: "risk-tolerance", Value: model.Number(3)},
		{QuestionID: "communication", Value: model.Number(2)},
		{QuestionID: "client-calls", Value: model.Text("No")},
		{QuestionID: "creativity", Value: model.Number(5)},
		{QuestionID: "passive-income", Value: model.Number(5)},
	})
}

func TestRanker_Rank(t *testing.T) {
	Convey("Given a ranker with fixed scores", t, func() {
		scores := fixedScorer{"a": 50, "b": 90, "c": 70, "d": 90, "e": 50, "f": 50}
		r := ranking.NewRanker(ranking.WithScorer(scores))
		answers := model.NewAnswerSet(nil)

		Convey("When ranking six models", func() {
			results := r.Rank(answers, models("a", "b", "c", "d", "e", "f"))

			Convey("Then the top four are returned highest first with ties in input order", func() {
				So(results, ShouldHaveLength, 4)
				ids := []string{results[0].Model.ID, results[1].Model.ID, results[2].Model.ID, results[3].Model.ID}
				So(ids, ShouldResemble, []string{"b", "d", "c", "a"})
			})

			Convey("Then every analysis carries the ranked score", func() {
				for _, res := range results {
					So(res.Analysis.MatchScore, ShouldEqual, res.Score)
					So(res.Label, ShouldNotBeEmpty)
					So(res.Analysis.Strengths, ShouldNotBeEmpty)
				}
			})
		})

		Convey("When every model ties", func() {
			tied := ranking.NewRanker(ranking.WithScorer(fixedScorer{}))
			results := tied.RankN(answers, models("z", "y", "x", "w", "v"), 4)

			Convey("Then catalog order is preserved", func() {
				So(results, ShouldHaveLength, 4)
				So(results[0].Model.ID, ShouldEqual, "z")
				So(results[3].Model.ID, ShouldEqual, "w")
			})
		})

		Convey("When the catalog is empty", func() {
			results := r.Rank(answers, nil)

			Convey("Then an empty non-nil list is returned", func() {
				So(results, ShouldNotBeNil)
				So(results, ShouldBeEmpty)
			})
		})

		Convey("When a custom limit is requested", func() {
			So(r.RankN(answers, models("a", "b", "c"), 2), ShouldHaveLength, 2)
			So(r.RankN(answers, models("a", "b", "c"), 10), ShouldHaveLength, 3)
			So(r.RankN(answers, models("a", "b", "c", "d", "e"), 0), ShouldHaveLength, 4)
			So(ranking.NewRanker(ranking.WithLimit(1)).Limit(), ShouldEqual, 1)
		})
	})
}

func TestRanker_Detail(t *testing.T) {
	Convey("Given the built-in catalog and a realistic answer set", t, func() {
		r := ranking.NewRanker()
		cat := catalog.Default()
		answers := sampleAnswers()
		scorer := scoring.NewWeightedScorer()

		Convey("Then the detail score equals the ranked score for every model", func() {
			ranked := r.RankN(answers, cat.Models(), cat.Len())
			So(ranked, ShouldHaveLength, cat.Len())
			for _, res := range ranked {
				detail := r.Detail(answers, res.Model)
				So(detail.Score, ShouldEqual, res.Score)
				So(detail.Analysis.MatchScore, ShouldEqual, res.Score)
				So(detail.Score, ShouldEqual, scorer.Score(answers, res.Model))
			}
		})

		Convey("Then ranked scores never increase down the list", func() {
			ranked := r.Rank(answers, cat.Models())
			for i := 1; i < len(ranked); i++ {
				So(ranked[i].Score, ShouldBeLessThanOrEqualTo, ranked[i-1].Score)
			}
		})
	})
}
