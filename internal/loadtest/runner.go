package loadtest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	service "github.com/okian/bizmatch/internal/app"
	"github.com/okian/bizmatch/internal/domain/catalog"
	"github.com/okian/bizmatch/internal/domain/types"
	"github.com/okian/bizmatch/pkg/logger"
)

// Sentinel kinds for failed runs.
var (
	ErrSessionsFailed = errors.New("sessions failed")
	ErrVerification   = errors.New("served recommendations failed verification")
)

// File permission constants.
const (
	directoryPermission = 0o750
	filePermission      = 0o600
)

// Run executes the complete load test.
func Run(ctx context.Context, cfg *Config, log logger.Logger) (*Stats, error) {
	stats := &Stats{StartTime: time.Now()}

	log.Info(ctx, "starting bizmatch load test",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("sessions", cfg.Sessions),
		logger.Int("workers", cfg.Workers),
		logger.Int("limit", cfg.Limit),
		logger.String("timeout", cfg.Timeout.String()),
	)

	local, err := localService(ctx, cfg)
	if err != nil {
		return stats, err
	}
	defer local.Close()

	c := newClient(cfg.BaseURL, cfg.Timeout)
	if err := c.health(ctx); err != nil {
		return stats, fmt.Errorf("service health check failed: %w", err)
	}

	scenarios := generateScenarios(cfg.Sessions, cfg.Seed)
	stats.SessionsGenerated = len(scenarios)

	if cfg.OutputFile != "" {
		if err := saveScenarios(cfg.OutputFile, scenarios); err != nil {
			log.Warn(ctx, "failed to save scenarios", logger.Error(err))
		}
	}

	var submitted, failed, verified, mismatches int64
	jobs := make(chan Scenario, max(cfg.Workers, 1)*2)
	var wg sync.WaitGroup

	for i := 0; i < max(cfg.Workers, 1); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				atomic.AddInt64(&submitted, 1)
				got, err := runScenario(ctx, c, sc, cfg.Limit)
				if err != nil {
					atomic.AddInt64(&failed, 1)
					log.Warn(ctx, "session failed", logger.Int("scenario", sc.Index), logger.Error(err))
					continue
				}
				want, err := local.Recommend(ctx, sc.Answers, cfg.Limit)
				if err == nil {
					err = verifyReport(got, want)
				}
				if err != nil {
					atomic.AddInt64(&mismatches, 1)
					if cfg.Verbose {
						log.Warn(ctx, "report mismatch", logger.Int("scenario", sc.Index), logger.Error(err))
					}
					continue
				}
				atomic.AddInt64(&verified, 1)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, sc := range scenarios {
			select {
			case <-ctx.Done():
				return
			case jobs <- sc:
			}
		}
	}()
	wg.Wait()

	stats.SessionsSubmitted = int(submitted)
	stats.SessionsFailed = int(failed)
	stats.ReportsVerified = int(verified)
	stats.Mismatches = int(mismatches)
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	logStats(ctx, log, stats)

	if err := ctx.Err(); err != nil {
		return stats, fmt.Errorf("load test interrupted: %w", err)
	}
	if stats.SessionsFailed > 0 {
		return stats, fmt.Errorf("%w: %d of %d", ErrSessionsFailed, stats.SessionsFailed, stats.SessionsSubmitted)
	}
	if stats.Mismatches > 0 {
		return stats, fmt.Errorf("%w: %d of %d", ErrVerification, stats.Mismatches, stats.SessionsSubmitted)
	}
	return stats, nil
}

// runScenario walks one session through its whole lifecycle.
func runScenario(ctx context.Context, c *client, sc Scenario, limit int) (report types.Report, err error) {
	id, err := c.createSession(ctx)
	if err != nil {
		return report, err
	}
	defer func() {
		if derr := c.deleteSession(ctx, id); derr != nil && err == nil {
			err = derr
		}
	}()

	if err := c.saveAnswers(ctx, id, sc.Answers); err != nil {
		return report, err
	}
	return c.recommendations(ctx, id, limit)
}

func localService(ctx context.Context, cfg *Config) (*service.Service, error) {
	if cfg.CatalogPath == "" {
		return service.New(), nil
	}
	cat, err := catalog.Load(ctx, catalog.WithFile(cfg.CatalogPath))
	if err != nil {
		return nil, err
	}
	return service.New(service.WithCatalog(cat)), nil
}

func saveScenarios(path string, scenarios []Scenario) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(scenarios, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode scenarios: %w", err)
	}
	if err := os.WriteFile(path, data, filePermission); err != nil {
		return fmt.Errorf("failed to write scenarios: %w", err)
	}
	return nil
}

func logStats(ctx context.Context, log logger.Logger, stats *Stats) {
	var perSecond float64
	if stats.Duration > 0 {
		perSecond = float64(stats.SessionsSubmitted) / stats.Duration.Seconds()
	}
	log.Info(ctx, "final statistics",
		logger.Int("sessionsGenerated", stats.SessionsGenerated),
		logger.Int("sessionsSubmitted", stats.SessionsSubmitted),
		logger.Int("sessionsFailed", stats.SessionsFailed),
		logger.Int("reportsVerified", stats.ReportsVerified),
		logger.Int("mismatches", stats.Mismatches),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("sessionsPerSecond", perSecond),
	)
}
