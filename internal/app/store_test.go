package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/okian/bizmatch/internal/adapters/repository"
	service "github.com/okian/bizmatch/internal/app"
	"github.com/okian/bizmatch/internal/config"
	"github.com/okian/bizmatch/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreBackends(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	cases := []struct {
		name  string
		setup func(c *config.Config)
		want  any
	}{
		{"memory", func(c *config.Config) { c.Store = config.StoreMemory }, &repository.MemoryStore{}},
		{"redis", func(c *config.Config) { c.Store = config.StoreRedis; c.RedisAddr = mr.Addr() }, &repository.RedisStore{}},
		{"sqlite", func(c *config.Config) {
			c.Store = config.StoreSQLite
			c.SQLitePath = filepath.Join(t.TempDir(), "answers.db")
		}, &repository.SQLiteStore{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.New()
			tc.setup(cfg)

			store, err := service.NewStore(ctx, cfg)
			require.NoError(t, err)
			defer store.Close()
			assert.IsType(t, tc.want, store)

			svc := service.New(service.WithStore(store))
			created, err := svc.CreateSession(ctx)
			require.NoError(t, err)
			require.NoError(t, svc.AppendAnswers(ctx, created.SessionID,
				model.Answer{QuestionID: "investment", Value: model.Text("$0")}))
			report, err := svc.Recommendations(ctx, created.SessionID, 1)
			require.NoError(t, err)
			require.Len(t, report.Recommendations, 1)
			assert.Equal(t, 100, report.Recommendations[0].Score)
		})
	}
}

func TestNewStoreErrors(t *testing.T) {
	ctx := context.Background()

	cfg := config.New()
	cfg.Store = "etcd"
	_, err := service.NewStore(ctx, cfg)
	assert.True(t, errors.Is(err, config.ErrInvalidConfig))

	cfg = config.New()
	cfg.Store = config.StoreRedis
	cfg.RedisAddr = "127.0.0.1:1"
	_, err = service.NewStore(ctx, cfg)
	assert.Error(t, err)
}

func TestPurgeExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	store, err := repository.NewSQLiteStore(ctx, ":memory:",
		repository.WithTTL(time.Hour), repository.WithClock(clock))
	require.NoError(t, err)
	svc := service.New(service.WithStore(store))
	defer svc.Close()

	created, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	n, err := svc.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	now = now.Add(2 * time.Hour)
	n, err = svc.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = svc.Answers(ctx, created.SessionID)
	assert.ErrorIs(t, err, service.ErrSessionNotFound)

	memory := service.New()
	defer memory.Close()
	n, err = memory.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
