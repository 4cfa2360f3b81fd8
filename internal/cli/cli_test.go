package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	service "github.com/okian/bizmatch/internal/app"
	"github.com/okian/bizmatch/internal/domain/model"
	"github.com/okian/bizmatch/internal/domain/questions"
	"github.com/okian/bizmatch/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func execute(stdin string, args ...string) (string, error) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseAnswers(t *testing.T) {
	Convey("Given answers files in both layouts", t, func() {
		wrapped := `{"answers":[{"questionId":"investment","answer":"$0"}]}`
		bare := `[{"questionId":"tech-skills","answer":3},{"questionId":"familiar-tools","answer":["Canva"]}]`

		Convey("Then both decode", func() {
			a, err := parseAnswers([]byte(wrapped))
			So(err, ShouldBeNil)
			So(a, ShouldResemble, []model.Answer{{QuestionID: "investment", Value: model.Text("$0")}})

			b, err := parseAnswers([]byte(bare))
			So(err, ShouldBeNil)
			So(b, ShouldHaveLength, 2)
			So(b[1].Value, ShouldResemble, model.List("Canva"))
		})

		Convey("Then values are coerced to their question's shape", func() {
			a, err := parseAnswers([]byte(`[
				{"questionId":"creativity","answer":"4"},
				{"questionId":"familiar-tools","answer":"Canva"},
				{"questionId":"investment","answer":3},
				{"questionId":"ghost","answer":"x"}
			]`))
			So(err, ShouldBeNil)
			So(a, ShouldResemble, []model.Answer{
				{QuestionID: "creativity", Value: model.Number(4)},
				{QuestionID: "familiar-tools", Value: model.List("Canva")},
				{QuestionID: "investment", Value: model.Number(3)},
				{QuestionID: "ghost", Value: model.Text("x")},
			})
		})

		Convey("Then blank input is an empty list and junk is an error", func() {
			a, err := parseAnswers([]byte("  \n"))
			So(err, ShouldBeNil)
			So(a, ShouldNotBeNil)
			So(a, ShouldBeEmpty)

			_, err = parseAnswers([]byte("{oops"))
			So(err, ShouldNotBeNil)
		})

		Convey("Then a missing path is rejected", func() {
			_, err := readAnswersFile("", strings.NewReader(""))
			So(errors.Is(err, ErrNoAnswersFile), ShouldBeTrue)
		})
	})
}

func TestQuestionsCommand(t *testing.T) {
	Convey("Given the questions command", t, func() {
		Convey("When run without a filter", func() {
			out, err := execute("", "questions")

			Convey("Then every question is printed", func() {
				So(err, ShouldBeNil)
				var qs []model.Question
				So(json.Unmarshal([]byte(out), &qs), ShouldBeNil)
				So(qs, ShouldHaveLength, questions.Count())
			})
		})

		Convey("When filtered by category", func() {
			out, err := execute("", "questions", "--category", "tools")

			Convey("Then only that round is printed", func() {
				So(err, ShouldBeNil)
				var qs []model.Question
				So(json.Unmarshal([]byte(out), &qs), ShouldBeNil)
				So(qs, ShouldNotBeEmpty)
				for _, q := range qs {
					So(q.Category, ShouldEqual, model.CategoryTools)
				}
			})
		})

		Convey("When the category is unknown", func() {
			_, err := execute("", "questions", "--category", "hobbies")

			Convey("Then it fails", func() {
				So(errors.Is(err, ErrUnknownCategory), ShouldBeTrue)
			})
		})
	})
}

func TestModelsCommand(t *testing.T) {
	Convey("Given the models command", t, func() {
		Convey("When using the built-in catalog", func() {
			out, err := execute("", "models")

			Convey("Then the six models are listed", func() {
				So(err, ShouldBeNil)
				var models []types.ModelSummary
				So(json.Unmarshal([]byte(out), &models), ShouldBeNil)
				So(models, ShouldHaveLength, 6)
			})
		})

		Convey("When filtered by category and difficulty", func() {
			out, err := execute("", "models", "--category", "e-commerce", "--difficulty", "advanced")

			Convey("Then only matching models are listed", func() {
				So(err, ShouldBeNil)
				var models []types.ModelSummary
				So(json.Unmarshal([]byte(out), &models), ShouldBeNil)
				So(models, ShouldHaveLength, 1)
				So(models[0].ID, ShouldEqual, "ecommerce-brand-building")
			})
		})

		Convey("When the difficulty is unknown", func() {
			_, err := execute("", "models", "--difficulty", "expert")

			Convey("Then it fails", func() {
				So(errors.Is(err, service.ErrInvalidFilter), ShouldBeTrue)
			})
		})

		Convey("When the catalog file does not exist", func() {
			_, err := execute("", "models", "--catalog", filepath.Join(t.TempDir(), "none.yaml"))

			Convey("Then it fails", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestModelCommand(t *testing.T) {
	Convey("Given the model command", t, func() {
		Convey("When asked for a known model", func() {
			out, err := execute("", "model", "online-tutoring")

			Convey("Then its page with description sections is printed", func() {
				So(err, ShouldBeNil)
				var page types.ModelPage
				So(json.Unmarshal([]byte(out), &page), ShouldBeNil)
				So(page.ID, ShouldEqual, "online-tutoring")
				So(page.Sections, ShouldNotBeEmpty)
				So(page.RequiredSkills, ShouldContain, "Communication")
			})
		})

		Convey("When the model is unknown", func() {
			_, err := execute("", "model", "lemonade-stand")

			Convey("Then it fails", func() {
				So(errors.Is(err, service.ErrModelNotFound), ShouldBeTrue)
			})
		})
	})
}

func TestValidateCommand(t *testing.T) {
	Convey("Given the validate command", t, func() {
		Convey("When the answers are valid", func() {
			out, err := execute(`[{"questionId":"tech-skills","answer":5}]`, "validate", "--answers", "-")

			Convey("Then it reports valid", func() {
				So(err, ShouldBeNil)
				So(out, ShouldContainSubstring, `"valid": true`)
			})
		})

		Convey("When a scale answer is written as a string", func() {
			out, err := execute(`{"answers":[{"questionId":"creativity","answer":"4"}]}`, "validate", "-a", "-")

			Convey("Then it is coerced and accepted", func() {
				So(err, ShouldBeNil)
				So(out, ShouldContainSubstring, `"valid": true`)
			})
		})

		Convey("When the answers are invalid", func() {
			out, err := execute(`[{"questionId":"tech-skills","answer":6},{"questionId":"ghost","answer":"x"}]`,
				"validate", "-a", "-")

			Convey("Then each problem is listed and the command fails", func() {
				So(errors.Is(err, questions.ErrInvalidAnswer), ShouldBeTrue)
				var res validateOutput
				So(json.Unmarshal([]byte(out), &res), ShouldBeNil)
				So(res.Valid, ShouldBeFalse)
				So(res.Errors, ShouldHaveLength, 2)
			})
		})
	})
}

func TestRecommendCommand(t *testing.T) {
	Convey("Given an answers file with only a $0 budget", t, func() {
		path := writeFile(t, "answers.json", `{"answers":[{"questionId":"investment","answer":"$0"}]}`)

		Convey("When recommending with the default limit", func() {
			out, err := execute("", "recommend", "--answers", path)

			Convey("Then the four full matches are printed", func() {
				So(err, ShouldBeNil)
				var report types.Report
				So(json.Unmarshal([]byte(out), &report), ShouldBeNil)
				So(report.Recommendations, ShouldHaveLength, 4)
				So(report.Recommendations[0].Model.ID, ShouldEqual, "freelance-writing")
				So(report.Recommendations[0].Score, ShouldEqual, 100)
				So(report.Recommendations[0].Analysis.MatchScore, ShouldEqual, 100)
			})
		})

		Convey("When a limit is given", func() {
			out, err := execute("", "recommend", "-a", path, "-n", "1")

			Convey("Then only that many are printed", func() {
				So(err, ShouldBeNil)
				var report types.Report
				So(json.Unmarshal([]byte(out), &report), ShouldBeNil)
				So(report.Recommendations, ShouldHaveLength, 1)
			})
		})

		Convey("When the limit is out of range", func() {
			_, err := execute("", "recommend", "-a", path, "-n", "50")

			Convey("Then it fails", func() {
				So(errors.Is(err, service.ErrInvalidLimit), ShouldBeTrue)
			})
		})

		Convey("When --answers is omitted", func() {
			_, err := execute("", "recommend")

			Convey("Then it fails", func() {
				So(errors.Is(err, ErrNoAnswersFile), ShouldBeTrue)
			})
		})
	})
}

func TestDetailCommand(t *testing.T) {
	Convey("Given the detail command", t, func() {
		stdin := `[{"questionId":"investment","answer":"$0"}]`

		Convey("When scoring a known model", func() {
			out, err := execute(stdin, "detail", "dropshipping", "--answers", "-")

			Convey("Then the breakdown covers every factor", func() {
				So(err, ShouldBeNil)
				var detail types.ModelDetail
				So(json.Unmarshal([]byte(out), &detail), ShouldBeNil)
				So(detail.Model.ID, ShouldEqual, "dropshipping")
				So(detail.Score, ShouldEqual, 100)
				So(detail.Breakdown, ShouldHaveLength, 11)
			})
		})

		Convey("When the model is unknown", func() {
			_, err := execute(stdin, "detail", "crypto-mining", "-a", "-")

			Convey("Then it fails", func() {
				So(errors.Is(err, service.ErrModelNotFound), ShouldBeTrue)
			})
		})

		Convey("When no model is named", func() {
			_, err := execute(stdin, "detail", "-a", "-")

			Convey("Then argument validation fails", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
