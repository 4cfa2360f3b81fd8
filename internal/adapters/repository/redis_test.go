package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/okian/bizmatch/internal/domain/model"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisStore(t *testing.T, opts ...Option) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := NewRedisClient(RedisConfig{Address: mr.Addr()})
	store, err := NewRedisStore(context.Background(), client, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, mr := setupRedisStore(t)

	answers := []model.Answer{
		{QuestionID: "time-commitment", Value: model.Text("5–10 hours")},
		{QuestionID: "tech-skills", Value: model.Number(3)},
		{QuestionID: "familiar-tools", Value: model.List("Canva")},
	}
	require.NoError(t, store.Save(ctx, "s1", answers))

	raw, err := mr.Get("bizmatch:answers:s1")
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"questionId":"time-commitment","answer":"5–10 hours"},{"questionId":"tech-skills","answer":3},{"questionId":"familiar-tools","answer":["Canva"]}]`,
		raw)

	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, answers, loaded)
}

func TestRedisStoreAppend(t *testing.T) {
	ctx := context.Background()
	store, _ := setupRedisStore(t)

	assert.ErrorIs(t, store.Append(ctx, "s1", model.Answer{QuestionID: "a"}), ErrNotFound)

	require.NoError(t, store.Save(ctx, "s1", nil))
	require.NoError(t, store.Append(ctx, "s1",
		model.Answer{QuestionID: "risk-tolerance", Value: model.Number(2)},
		model.Answer{QuestionID: "investment", Value: model.Text("$0")},
	))
	require.NoError(t, store.Append(ctx, "s1", model.Answer{QuestionID: "risk-tolerance", Value: model.Number(5)}))

	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "risk-tolerance", loaded[0].QuestionID)
	assert.Equal(t, model.Number(5), loaded[0].Value)
}

func TestRedisStoreMissingAndDelete(t *testing.T) {
	ctx := context.Background()
	store, mr := setupRedisStore(t, WithKeyPrefix("test:"))

	_, err := store.Load(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "nope"), ErrNotFound)

	require.NoError(t, store.Save(ctx, "s1", nil))
	assert.True(t, mr.Exists("test:s1"))
	require.NoError(t, store.Delete(ctx, "s1"))
	assert.False(t, mr.Exists("test:s1"))
}

func TestRedisStoreTTL(t *testing.T) {
	ctx := context.Background()
	store, mr := setupRedisStore(t, WithTTL(time.Minute))

	require.NoError(t, store.Save(ctx, "s1", nil))
	assert.Equal(t, time.Minute, mr.TTL("bizmatch:answers:s1"))

	mr.FastForward(2 * time.Minute)
	_, err := store.Load(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreCorruptPayload(t *testing.T) {
	ctx := context.Background()
	store, mr := setupRedisStore(t)

	require.NoError(t, mr.Set("bizmatch:answers:bad", "{not json"))
	_, err := store.Load(ctx, "bad")
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestNewRedisStoreUnreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond})
	_, err := NewRedisStore(context.Background(), client)
	assert.Error(t, err)
	_ = client.Close()
}
