package types_test

import (
	"encoding/json"
	"testing"

	"github.com/okian/bizmatch/internal/domain/model"
	"github.com/okian/bizmatch/internal/domain/profile"
	types "github.com/okian/bizmatch/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewReport(t *testing.T) {
	Convey("Given ranked match results", t, func() {
		results := []model.MatchResult{
			{Model: model.BusinessModel{ID: "a"}, Score: 90, Label: "Excellent"},
			{Model: model.BusinessModel{ID: "b"}, Score: 70, Label: "Good"},
		}

		Convey("When building a report", func() {
			report := types.NewReport("s1", profile.Profile{Answered: 3}, results)

			Convey("Then recommendations are numbered from one in order", func() {
				So(report.Recommendations, ShouldHaveLength, 2)
				So(report.Recommendations[0].Rank, ShouldEqual, 1)
				So(report.Recommendations[0].Model.ID, ShouldEqual, "a")
				So(report.Recommendations[1].Rank, ShouldEqual, 2)
			})

			Convey("Then the embedded result is flattened in JSON", func() {
				out, err := json.Marshal(report.Recommendations[0])
				So(err, ShouldBeNil)
				var decoded map[string]any
				So(json.Unmarshal(out, &decoded), ShouldBeNil)
				So(decoded["rank"], ShouldEqual, 1)
				So(decoded["score"], ShouldEqual, 90)
				So(decoded["label"], ShouldEqual, "Excellent")
			})
		})

		Convey("When there are no results", func() {
			report := types.NewReport("", profile.Profile{}, nil)

			Convey("Then recommendations encode as an empty list", func() {
				out, err := json.Marshal(report)
				So(err, ShouldBeNil)
				So(string(out), ShouldContainSubstring, `"recommendations":[]`)
				So(string(out), ShouldNotContainSubstring, "session_id")
			})
		})
	})
}

func TestSummarize(t *testing.T) {
	Convey("Given a business model", t, func() {
		m := model.BusinessModel{
			ID:                "freelance-writing",
			Title:             "Freelance Writing",
			Difficulty:        model.Beginner,
			InitialInvestment: "$0-$500",
			Scalability:       model.ScalabilityMedium,
			Pros:              []string{"Low startup cost"},
		}

		Convey("Then the summary carries the listing fields", func() {
			s := types.Summarize(m)
			So(s.ID, ShouldEqual, m.ID)
			So(s.Difficulty, ShouldEqual, model.Beginner)
			So(s.InitialInvestment, ShouldEqual, "$0-$500")
			So(s.Scalability, ShouldEqual, model.ScalabilityMedium)
		})
	})
}
