package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/okian/bizmatch/internal/config"
	"github.com/okian/bizmatch/pkg/logger"
	"github.com/okian/bizmatch/pkg/logger/loggertest"
	"github.com/smartystreets/goconvey/convey"
)

func TestNewService(t *testing.T) {
	convey.Convey("Given a configuration", t, func() {
		ctx := context.Background()
		cfg := config.New()

		convey.Convey("When the defaults are used", func() {
			svc, err := newService(ctx, cfg, loggertest.New(t))
			convey.So(err, convey.ShouldBeNil)
			defer svc.Close()

			convey.Convey("Then the built-in catalog and memory store are wired", func() {
				stats := svc.GetStats()
				convey.So(stats["catalogModels"], convey.ShouldEqual, 6)
				convey.So(stats["sessions"], convey.ShouldEqual, 0)
			})
		})

		convey.Convey("When a catalog file is configured", func() {
			path := filepath.Join(t.TempDir(), "models.yaml")
			content := `models:
  - id: newsletter
    title: Paid Newsletter
    description: Write a subscription newsletter.
    difficulty: Beginner
    category: Content
    time_to_start: 1-2 weeks
    initial_investment: $0-$100
    potential_income: $100-$3,000/month
    time_commitment: 5-15 hours/week
    scalability: Medium
    skills: [Writing]
`
			convey.So(os.WriteFile(path, []byte(content), 0o600), convey.ShouldBeNil)
			cfg.CatalogPath = path
			cfg.Store = config.StoreSQLite
			cfg.SQLitePath = filepath.Join(t.TempDir(), "answers.db")

			svc, err := newService(ctx, cfg, loggertest.New(t))
			convey.So(err, convey.ShouldBeNil)
			defer svc.Close()

			convey.Convey("Then only the file's models are served", func() {
				models, err := svc.Models("", "")
				convey.So(err, convey.ShouldBeNil)
				convey.So(models, convey.ShouldHaveLength, 1)
				convey.So(models[0].ID, convey.ShouldEqual, "newsletter")
			})
		})

		convey.Convey("When the catalog file is missing", func() {
			cfg.CatalogPath = filepath.Join(t.TempDir(), "missing.yaml")
			_, err := newService(ctx, cfg, loggertest.New(t))

			convey.Convey("Then an error is returned", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When the store is unknown", func() {
			cfg.Store = "etcd"
			_, err := newService(ctx, cfg, loggertest.New(t))

			convey.Convey("Then an error is returned", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestNewMux(t *testing.T) {
	convey.Convey("Given the assembled mux", t, func() {
		ctx := context.Background()
		svc, err := newService(ctx, config.New(), loggertest.New(t))
		convey.So(err, convey.ShouldBeNil)
		defer svc.Close()
		mux := newMux(ctx, svc, logger.NewNop())

		convey.Convey("Then API, docs and page routes are all served", func() {
			for _, path := range []string{"/", "/healthz", "/stats", "/questions", "/models", "/openapi.yaml", "/api-docs"} {
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, httptest.NewRequest("GET", path, http.NoBody))
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			}
		})
	})
}

func TestRun(t *testing.T) {
	convey.Convey("Given a server on an ephemeral port", t, func() {
		cfg := config.New()
		cfg.Addr = "127.0.0.1:0"

		convey.Convey("When the context is cancelled", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()

			convey.Convey("Then it shuts down cleanly", func() {
				convey.So(run(ctx, cfg, loggertest.New(t)), convey.ShouldBeNil)
			})
		})

		convey.Convey("When the address cannot be bound", func() {
			cfg.Addr = "256.0.0.1:99999"

			convey.Convey("Then the listen error is returned", func() {
				convey.So(run(context.Background(), cfg, loggertest.New(t)), convey.ShouldNotBeNil)
			})
		})
	})
}

func TestUpdateSystemMetrics(t *testing.T) {
	convey.Convey("Given the metrics updater", t, func() {
		convey.Convey("Then it should update metrics without panicking", func() {
			convey.So(updateSystemMetrics, convey.ShouldNotPanic)
		})

		convey.Convey("Then background loops stop with the context", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
			defer cancel()
			convey.So(func() { startSystemMetricsUpdater(ctx) }, convey.ShouldNotPanic)
		})
	})
}
