package nutrition

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-calorie/internal/pkg/common"
)

type mapStore struct {
	mu   sync.Mutex
	data map[string]string
}

func newMapStore() *mapStore {
	return &mapStore{data: make(map[string]string)}
}

func (s *mapStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.data[key]; ok {
		return v, nil
	}
	return "", common.ErrCacheMiss
}

func (s *mapStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *mapStore) Close() error { return nil }

func TestResolveBuiltInOverridesSearch(t *testing.T) {
	// 內建表命中時不會打 USDA
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("USDA should not be queried for built-in ingredients")
	}))
	defer server.Close()

	resolver := NewResolver(newTestClient(server.URL), nil)

	est, reason, err := resolver.Resolve(context.Background(), "salt")
	require.NoError(t, err)
	assert.Empty(t, reason)
	require.NotNil(t, est)
	assert.Equal(t, 0.0, est.KcalPer100g)
	assert.Contains(t, est.Description, "built-in value")

	// 名稱清理後才查表："unsalted butter, softened" 命中 "butter"
	est, _, err = resolver.Resolve(context.Background(), "unsalted butter, softened")
	require.NoError(t, err)
	require.NotNil(t, est)
	assert.Equal(t, 717.0, est.KcalPer100g)
}

func TestResolveCachesSuccess(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"foods":[{"description":"Dragon fruit, raw","foodNutrients":[{"nutrientNumber":"208","unitName":"KCAL","value":60}]}]}`))
	}))
	defer server.Close()

	resolver := NewResolver(newTestClient(server.URL), newMapStore())

	for i := 0; i < 3; i++ {
		est, reason, err := resolver.Resolve(context.Background(), "dragon fruit")
		require.NoError(t, err)
		assert.Empty(t, reason)
		require.NotNil(t, est)
		assert.Equal(t, 60.0, est.KcalPer100g)
	}
	assert.Equal(t, 1, calls)
}

func TestResolveFailureNotCached(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	store := newMapStore()
	resolver := NewResolver(newTestClient(server.URL), store)

	for i := 0; i < 2; i++ {
		est, reason, err := resolver.Resolve(context.Background(), "dragon fruit")
		require.NoError(t, err)
		assert.Nil(t, est)
		assert.Contains(t, reason, "rate limit")
	}
	// 軟失敗不進快取，每次都重打
	assert.Equal(t, 2, calls)
	assert.Empty(t, store.data)
}
