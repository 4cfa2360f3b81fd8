package loggertest_test

import (
	"context"
	"testing"

	"github.com/okian/bizmatch/pkg/logger"
	"github.com/okian/bizmatch/pkg/logger/loggertest"
)

func TestNew(t *testing.T) {
	log := loggertest.New(t).Named("unit")
	log.Debug(context.Background(), "visible in -v output", logger.Any("k", []int{1}))
}
