package cachemanager_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/curiolabs/curio/internal/cachemanager"
)

func newCache(t *testing.T) *cachemanager.InMemoryCacheManager[string, []string] {
	t.Helper()
	return cachemanager.NewInMemoryCacheManager[string, []string](
		"test", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)
}

func TestInMemoryCacheManager_SetGet(t *testing.T) {
	ctx := context.Background()
	cache := newCache(t)

	cache.Set(ctx, "key", []string{"a", "b"}, cachemanager.DefaultExpiration)

	value, found := cache.Get(ctx, "key")
	require.True(t, found)
	require.Equal(t, []string{"a", "b"}, value)
}

func TestInMemoryCacheManager_GetMissing(t *testing.T) {
	ctx := context.Background()
	cache := newCache(t)

	value, found := cache.Get(ctx, "absent")
	require.False(t, found)
	require.Nil(t, value)
}

func TestInMemoryCacheManager_Delete(t *testing.T) {
	ctx := context.Background()
	cache := newCache(t)

	cache.Set(ctx, "one", []string{"1"}, cachemanager.DefaultExpiration)
	cache.Set(ctx, "two", []string{"2"}, cachemanager.DefaultExpiration)

	require.NoError(t, cache.Delete(ctx, "one", "missing"))

	_, found := cache.Get(ctx, "one")
	require.False(t, found)
	_, found = cache.Get(ctx, "two")
	require.True(t, found, "delete should only remove the named keys")
}

func TestInMemoryCacheManager_Flush(t *testing.T) {
	ctx := context.Background()
	cache := newCache(t)

	cache.Set(ctx, "one", []string{"1"}, cachemanager.DefaultExpiration)
	cache.Set(ctx, "two", []string{"2"}, cachemanager.DefaultExpiration)

	require.NoError(t, cache.Flush(ctx))

	_, found := cache.Get(ctx, "one")
	require.False(t, found)
	_, found = cache.Get(ctx, "two")
	require.False(t, found)
}

func TestInMemoryCacheManager_Expiration(t *testing.T) {
	ctx := context.Background()
	cache := cachemanager.NewInMemoryCacheManager[string, string](
		"test", 20*time.Millisecond, time.Minute)

	cache.Set(ctx, "key", "value", 20*time.Millisecond)

	_, found := cache.Get(ctx, "key")
	require.True(t, found)

	require.Eventually(t, func() bool {
		_, found := cache.Get(ctx, "key")
		return !found
	}, time.Second, 10*time.Millisecond, "entries should expire after their TTL")
}
