package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/okian/bizmatch/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSQLiteStore(t *testing.T, opts ...Option) *SQLiteStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "answers.db")
	store, err := NewSQLiteStore(context.Background(), path, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := setupSQLiteStore(t)

	_, err := store.Load(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound)

	answers := []model.Answer{
		{QuestionID: "motivation", Value: model.Text("Financial freedom")},
		{QuestionID: "creativity", Value: model.Number(4)},
	}
	require.NoError(t, store.Save(ctx, "s1", answers))
	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, answers, loaded)

	require.NoError(t, store.Save(ctx, "s1", nil))
	loaded, err = store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestSQLiteStoreAppendAndDelete(t *testing.T) {
	ctx := context.Background()
	store := setupSQLiteStore(t)

	assert.ErrorIs(t, store.Append(ctx, "s1", model.Answer{QuestionID: "a"}), ErrNotFound)

	require.NoError(t, store.Save(ctx, "s1", []model.Answer{{QuestionID: "a", Value: model.Text("1")}}))
	require.NoError(t, store.Append(ctx, "s1",
		model.Answer{QuestionID: "b", Value: model.Text("2")},
		model.Answer{QuestionID: "a", Value: model.Text("3")},
	))
	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, model.Text("3"), loaded[0].Value)

	require.NoError(t, store.Delete(ctx, "s1"))
	assert.ErrorIs(t, store.Delete(ctx, "s1"), ErrNotFound)
}

func TestSQLiteStoreExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	store := setupSQLiteStore(t, WithTTL(time.Hour), WithClock(func() time.Time { return now }))

	require.NoError(t, store.Save(ctx, "old", nil))
	now = now.Add(30 * time.Minute)
	require.NoError(t, store.Save(ctx, "new", nil))
	now = now.Add(45 * time.Minute)

	_, err := store.Load(ctx, "old")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.Load(ctx, "new")
	assert.NoError(t, err)

	n, err := store.Purge(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestSQLiteStoreInMemory(t *testing.T) {
	ctx := context.Background()
	store, err := NewSQLiteStore(ctx, ":memory:")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save(ctx, "s", []model.Answer{{QuestionID: "q", Value: model.List("x", "y")}}))
	loaded, err := store.Load(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, model.List("x", "y"), loaded[0].Value)
}
