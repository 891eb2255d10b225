package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-calorie/internal/infrastructure/config"
	"recipe-calorie/internal/pkg/common"
)

func testConfig(maxSize int, ttl time.Duration) *config.Config {
	return &config.Config{
		Cache: config.CacheConfig{
			Enabled:         true,
			Backend:         "memory",
			MaxSize:         maxSize,
			TTL:             ttl,
			CleanupInterval: time.Hour,
		},
	}
}

func TestMemoryStoreGetSet(t *testing.T) {
	store := newMemoryStore(testConfig(10, time.Minute))
	defer store.Close()
	ctx := context.Background()

	_, err := store.Get(ctx, "kcal:flour")
	assert.ErrorIs(t, err, common.ErrCacheMiss)

	require.NoError(t, store.Set(ctx, "kcal:flour", `{"kcal_per_100g":364}`))

	value, err := store.Get(ctx, "kcal:flour")
	require.NoError(t, err)
	assert.Equal(t, `{"kcal_per_100g":364}`, value)
}

func TestMemoryStoreTTLExpiry(t *testing.T) {
	store := newMemoryStore(testConfig(10, 20*time.Millisecond))
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "kcal:sugar", "387"))
	time.Sleep(40 * time.Millisecond)

	_, err := store.Get(ctx, "kcal:sugar")
	assert.ErrorIs(t, err, common.ErrCacheMiss)
}

func TestMemoryStoreEviction(t *testing.T) {
	store := newMemoryStore(testConfig(2, time.Minute))
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "a", "1"))
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, store.Set(ctx, "b", "2"))
	time.Sleep(2 * time.Millisecond)

	// 讀 a 讓 b 變成最久未存取
	_, err := store.Get(ctx, "a")
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "c", "3"))

	_, err = store.Get(ctx, "b")
	assert.ErrorIs(t, err, common.ErrCacheMiss)
	_, err = store.Get(ctx, "a")
	assert.NoError(t, err)
	_, err = store.Get(ctx, "c")
	assert.NoError(t, err)
}

func TestNewDisabledReturnsNil(t *testing.T) {
	cfg := testConfig(10, time.Minute)
	cfg.Cache.Enabled = false

	store, err := New(cfg)
	require.NoError(t, err)
	assert.Nil(t, store)
}

func TestNewUnknownBackend(t *testing.T) {
	cfg := testConfig(10, time.Minute)
	cfg.Cache.Backend = "memcached"

	_, err := New(cfg)
	assert.Error(t, err)
}
