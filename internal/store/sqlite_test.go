package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLite(t *testing.T) *SQLiteCache {
	t.Helper()
	cache, err := NewSQLite(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	require.NoError(t, cache.Migrate(context.Background()))
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestSQLiteCache_SetGet(t *testing.T) {
	cache := newSQLite(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k1", []byte(`{"a":1}`), time.Hour))

	payload, ok, err := cache.Get(ctx, "k1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"a":1}`, string(payload))
}

func TestSQLiteCache_GetMissing(t *testing.T) {
	cache := newSQLite(t)

	payload, ok, err := cache.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, payload)
}

func TestSQLiteCache_Overwrite(t *testing.T) {
	cache := newSQLite(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k1", []byte("old"), time.Hour))
	require.NoError(t, cache.Set(ctx, "k1", []byte("new"), time.Hour))

	payload, ok, err := cache.Get(ctx, "k1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "new", string(payload))
}

func TestSQLiteCache_ExpiredEntryIsMiss(t *testing.T) {
	cache := newSQLite(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k1", []byte("v"), -time.Minute))

	_, ok, err := cache.Get(ctx, "k1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteCache_PurgeExpired(t *testing.T) {
	cache := newSQLite(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "stale1", []byte("v"), -time.Minute))
	require.NoError(t, cache.Set(ctx, "stale2", []byte("v"), -time.Minute))
	require.NoError(t, cache.Set(ctx, "fresh", []byte("v"), time.Hour))

	n, err := cache.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, ok, err := cache.Get(ctx, "fresh")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSQLiteCache_MigrateIdempotent(t *testing.T) {
	cache := newSQLite(t)
	require.NoError(t, cache.Migrate(context.Background()))
}
