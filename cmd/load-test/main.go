package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/okian/bizmatch/internal/loadtest"
	"github.com/okian/bizmatch/pkg/logger"
)

// Default configuration constants.
const (
	defaultSessions    = 1000
	defaultWorkers     = 2 // multiplier for runtime.NumCPU()
	defaultTimeout     = 30 * time.Second
	defaultTestTimeout = 10 * time.Minute
)

func main() {
	var (
		baseURL     = flag.String("url", "http://localhost:9080", "Base URL of the service")
		sessions    = flag.Int("sessions", defaultSessions, "Number of questionnaire sessions to drive")
		limit       = flag.Int("limit", 0, "Recommendations requested per session (0 uses the server default)")
		workers     = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout     = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		seed        = flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for answer generation")
		catalogPath = flag.String("catalog", "", "Catalog file the server was started with")
		outputFile  = flag.String("output", "", "Write generated scenarios to this file")
		verbose     = flag.Bool("verbose", false, "Log every mismatching report")
	)
	flag.Parse()

	level := "info"
	if *verbose {
		level = "debug"
	}
	if err := logger.Init(level, "console"); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), defaultTestTimeout)
	defer cancel()

	cfg := &loadtest.Config{
		BaseURL:     *baseURL,
		Sessions:    *sessions,
		Limit:       *limit,
		Workers:     *workers,
		Timeout:     *timeout,
		Seed:        *seed,
		CatalogPath: *catalogPath,
		OutputFile:  *outputFile,
		Verbose:     *verbose,
	}

	log := logger.Named("loadtest")
	if _, err := loadtest.Run(ctx, cfg, log); err != nil {
		log.Error(ctx, "load test failed", logger.Error(err), logger.Any("seed", *seed))
		_ = logger.Sync()
		cancel()
		os.Exit(1)
	}
}
