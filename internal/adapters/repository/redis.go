package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/okian/bizmatch/internal/domain/model"
	"github.com/redis/go-redis/v9"
)

// maxTxRetries bounds optimistic retries when a watched key changes mid-append.
const maxTxRetries = 5

// RedisConfig holds connection settings for the Redis store.
type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// RedisStore keeps each session's answers as one JSON string key.
type RedisStore struct {
	client *redis.Client
	opts   options
}

var _ Store = (*RedisStore)(nil)

// NewRedisClient dials Redis with the pool settings used by the service.
func NewRedisClient(cfg RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})
}

// NewRedisStore wraps client and verifies the connection.
func NewRedisStore(ctx context.Context, client *redis.Client, opts ...Option) (*RedisStore, error) {
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &RedisStore{client: client, opts: newOptions(opts)}, nil
}

func (s *RedisStore) key(sessionID string) string {
	return s.opts.keyPrefix + sessionID
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

// Load implements Store.
func (s *RedisStore) Load(ctx context.Context, sessionID string) (answers []model.Answer, err error) {
	defer func(start time.Time) { observe(BackendRedis, "load", start, err) }(time.Now())
	if err := checkID(sessionID); err != nil {
		return nil, err
	}
	raw, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return decode(raw)
}

// Save implements Store.
func (s *RedisStore) Save(ctx context.Context, sessionID string, answers []model.Answer) (err error) {
	defer func(start time.Time) { observe(BackendRedis, "save", start, err) }(time.Now())
	if err := checkID(sessionID); err != nil {
		return err
	}
	payload, err := encode(answers)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key(sessionID), payload, s.opts.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Append implements Store. The read-merge-write runs in a WATCH transaction.
func (s *RedisStore) Append(ctx context.Context, sessionID string, answers ...model.Answer) (err error) {
	defer func(start time.Time) { observe(BackendRedis, "append", start, err) }(time.Now())
	if err := checkID(sessionID); err != nil {
		return err
	}
	key := s.key(sessionID)
	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("redis get: %w", err)
		}
		existing, err := decode(raw)
		if err != nil {
			return err
		}
		payload, err := encode(model.Merge(existing, answers...))
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, s.opts.ttl)
			return nil
		})
		return err
	}

	for range maxTxRetries {
		err = s.client.Watch(ctx, txf, key)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return fmt.Errorf("redis append: %w", err)
}

// Delete implements Store.
func (s *RedisStore) Delete(ctx context.Context, sessionID string) (err error) {
	defer func(start time.Time) { observe(BackendRedis, "delete", start, err) }(time.Now())
	if err := checkID(sessionID); err != nil {
		return err
	}
	n, err := s.client.Del(ctx, s.key(sessionID)).Result()
	if err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
