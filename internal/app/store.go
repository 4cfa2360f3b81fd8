package service

import (
	"context"
	"fmt"

	"github.com/okian/bizmatch/internal/adapters/repository"
	"github.com/okian/bizmatch/internal/config"
)

// NewStore builds the answer store selected by cfg.Store.
func NewStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	ttl := repository.WithTTL(cfg.SessionTTL())
	switch cfg.Store {
	case config.StoreMemory:
		return repository.NewMemoryStore(ctx, ttl), nil
	case config.StoreRedis:
		client := repository.NewRedisClient(repository.RedisConfig{
			Address:  cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		store, err := repository.NewRedisStore(ctx, client, ttl)
		if err != nil {
			_ = client.Close()
			return nil, err
		}
		return store, nil
	case config.StoreSQLite:
		return repository.NewSQLiteStore(ctx, cfg.SQLitePath, ttl)
	default:
		return nil, fmt.Errorf("%w: unknown store %q", config.ErrInvalidConfig, cfg.Store)
	}
}
