// Package repository persists questionnaire answer sets per session.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/okian/bizmatch/internal/domain/model"
	"github.com/okian/bizmatch/pkg/metrics"
)

// Backend names.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

// Store provides read/write access to answer sets keyed by session id.
type Store interface {
	// Load returns the stored answers in submission order.
	// Returns ErrNotFound if the session is unknown or expired.
	Load(ctx context.Context, sessionID string) ([]model.Answer, error)

	// Save replaces the session's answers, creating the session if needed.
	Save(ctx context.Context, sessionID string, answers []model.Answer) error

	// Append merges answers into an existing session; a later answer for
	// the same question replaces the earlier one in place.
	// Returns ErrNotFound if the session is unknown.
	Append(ctx context.Context, sessionID string, answers ...model.Answer) error

	// Delete removes the session. Returns ErrNotFound if it is unknown.
	Delete(ctx context.Context, sessionID string) error

	// Close releases resources held by the store.
	Close() error
}

// observe records latency and failures of one store operation.
func observe(backend, op string, start time.Time, err error) {
	metrics.RecordStoreLatency(backend, op, float64(time.Since(start).Microseconds())/1000)
	if err != nil && !errors.Is(err, ErrNotFound) {
		metrics.RecordStoreError(backend, op)
	}
}

func checkID(sessionID string) error {
	if sessionID == "" {
		return ErrInvalidSession
	}
	return nil
}
