package loadtest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/okian/bizmatch/internal/adapters/http/api"
	service "github.com/okian/bizmatch/internal/app"
	"github.com/okian/bizmatch/internal/domain/questions"
	"github.com/okian/bizmatch/internal/domain/types"
	"github.com/okian/bizmatch/pkg/logger/loggertest"
	. "github.com/smartystreets/goconvey/convey"
)

func newTestServer(t *testing.T) *httptest.Server {
	svc := service.New()
	mux := http.NewServeMux()
	api.NewServer(svc).Register(context.Background(), mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(func() {
		srv.Close()
		_ = svc.Close()
	})
	return srv
}

func TestGenerateScenarios(t *testing.T) {
	Convey("Given a fixed seed", t, func() {
		a := generateScenarios(20, 7)
		b := generateScenarios(20, 7)

		Convey("Then generation is reproducible", func() {
			So(a, ShouldResemble, b)
		})

		Convey("Then every scenario passes validation", func() {
			for _, sc := range a {
				So(questions.Validate(sc.Answers), ShouldBeNil)
			}
		})
	})
}

func TestVerifyReport(t *testing.T) {
	Convey("Given a locally computed report", t, func() {
		svc := service.New()
		defer svc.Close()
		want, err := svc.Recommend(context.Background(), generateScenarios(1, 3)[0].Answers, 0)
		So(err, ShouldBeNil)

		Convey("Then an identical report verifies", func() {
			So(verifyReport(want, want), ShouldBeNil)
		})

		Convey("Then a tampered analysis score is caught", func() {
			got := cloneReport(want)
			got.Recommendations[0].Analysis.MatchScore++
			So(verifyReport(got, want), ShouldNotBeNil)
		})

		Convey("Then a wrong rank is caught", func() {
			got := cloneReport(want)
			got.Recommendations[1].Rank = 7
			So(verifyReport(got, want), ShouldNotBeNil)
		})

		Convey("Then a missing entry is caught", func() {
			got := cloneReport(want)
			got.Recommendations = got.Recommendations[:1]
			So(verifyReport(got, want), ShouldNotBeNil)
		})
	})
}

func cloneReport(r types.Report) types.Report {
	out := r
	out.Recommendations = append([]types.Recommendation(nil), r.Recommendations...)
	return out
}

func TestRun(t *testing.T) {
	Convey("Given a running bizmatch server", t, func() {
		srv := newTestServer(t)
		out := filepath.Join(t.TempDir(), "runs", "scenarios.json")
		cfg := &Config{
			BaseURL:    srv.URL,
			Sessions:   25,
			Workers:    4,
			Timeout:    5 * time.Second,
			Seed:       42,
			OutputFile: out,
		}

		Convey("When the load test runs", func() {
			stats, err := Run(context.Background(), cfg, loggertest.New(t))

			Convey("Then every served report verifies", func() {
				So(err, ShouldBeNil)
				So(stats.SessionsSubmitted, ShouldEqual, 25)
				So(stats.ReportsVerified, ShouldEqual, 25)
				So(stats.Mismatches, ShouldEqual, 0)
				So(stats.SessionsFailed, ShouldEqual, 0)
			})

			Convey("Then the scenarios are written out", func() {
				_, statErr := os.Stat(out)
				So(statErr, ShouldBeNil)
			})
		})

		Convey("When a custom limit is requested", func() {
			cfg.Limit = 2
			stats, err := Run(context.Background(), cfg, loggertest.New(t))

			Convey("Then it still verifies", func() {
				So(err, ShouldBeNil)
				So(stats.ReportsVerified, ShouldEqual, 25)
			})
		})

		Convey("When the limit is beyond what the server allows", func() {
			cfg.Limit = 50
			cfg.Sessions = 3
			stats, err := Run(context.Background(), cfg, loggertest.New(t))

			Convey("Then every session fails", func() {
				So(errors.Is(err, ErrSessionsFailed), ShouldBeTrue)
				So(stats.SessionsFailed, ShouldEqual, 3)
			})
		})
	})

	Convey("Given no server", t, func() {
		cfg := &Config{BaseURL: "http://127.0.0.1:1", Sessions: 1, Workers: 1, Timeout: time.Second}

		Convey("Then the health check fails", func() {
			_, err := Run(context.Background(), cfg, loggertest.New(t))
			So(err, ShouldNotBeNil)
		})
	})
}
