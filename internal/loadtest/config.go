// Package loadtest drives concurrent questionnaire sessions through a
// running bizmatch server and checks every ranking it returns.
package loadtest

import (
	"time"

	"github.com/okian/bizmatch/internal/domain/model"
)

// Config holds configuration for a load test run.
type Config struct {
	BaseURL     string        // Base URL of the service
	Sessions    int           // Number of sessions to drive
	Limit       int           // Recommendations requested per session, 0 for the server default
	Workers     int           // Number of concurrent workers
	Timeout     time.Duration // HTTP request timeout
	Seed        uint64        // Seed for answer generation
	CatalogPath string        // Catalog the server was started with, empty for the built-in one
	OutputFile  string        // Optional file receiving the generated scenarios
	Verbose     bool          // Log every mismatch
}

// Scenario is one generated answer set.
type Scenario struct {
	Index   int            `json:"index"`
	Answers []model.Answer `json:"answers"`
}

// Stats holds run statistics.
type Stats struct {
	SessionsGenerated int
	SessionsSubmitted int
	SessionsFailed    int
	ReportsVerified   int
	Mismatches        int
	StartTime         time.Time
	EndTime           time.Time
	Duration          time.Duration
}
