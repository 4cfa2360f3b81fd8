// Package loggertest provides loggers for tests.
package loggertest

import (
	"testing"

	"github.com/okian/bizmatch/pkg/logger"
	"go.uber.org/zap/zaptest"
)

// New returns a Logger that writes through t.Log.
func New(t testing.TB) logger.Logger {
	return logger.Wrap(zaptest.NewLogger(t))
}
