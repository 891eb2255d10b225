package nutrition

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-calorie/internal/infrastructure/config"
)

func newTestClient(baseURL string) *Client {
	return NewClient(&config.USDAConfig{
		APIKey:    "test-key",
		BaseURL:   baseURL,
		DataTypes: "Foundation,SR Legacy",
		PageSize:  5,
		Timeout:   5 * time.Second,
	})
}

func TestSearchSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/foods/search", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "chickpeas", r.URL.Query().Get("query"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"foods":[{"description":"Chickpeas (garbanzo beans), canned","foodNutrients":[{"nutrientNumber":"208","unitName":"KCAL","value":139}]}]}`))
	}))
	defer server.Close()

	est, reason, err := newTestClient(server.URL).Search(context.Background(), "chickpeas")
	require.NoError(t, err)
	assert.Empty(t, reason)
	require.NotNil(t, est)
	assert.Equal(t, 139.0, est.KcalPer100g)
	assert.Equal(t, "Chickpeas (garbanzo beans), canned", est.Description)
}

func TestSearchScansForEnergyNutrient(t *testing.T) {
	// 第一筆沒有熱量資料，要掃到第二筆；非 KCAL 單位（kJ）要跳過
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"foods":[
			{"description":"No energy","foodNutrients":[{"nutrientNumber":"203","unitName":"G","value":7}]},
			{"description":"kJ only","foodNutrients":[{"nutrientNumber":"208","unitName":"kJ","value":582}]},
			{"description":"Atwater energy","foodNutrients":[{"nutrientNumber":"957","unitName":"kcal","value":364}]}
		]}`))
	}))
	defer server.Close()

	est, reason, err := newTestClient(server.URL).Search(context.Background(), "flour")
	require.NoError(t, err)
	assert.Empty(t, reason)
	require.NotNil(t, est)
	assert.Equal(t, 364.0, est.KcalPer100g)
	assert.Equal(t, "Atwater energy", est.Description)
}

func TestSearchInvalidKeyIsFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	est, _, err := newTestClient(server.URL).Search(context.Background(), "flour")
	assert.Nil(t, est)
	assert.ErrorIs(t, err, ErrInvalidAPIKey)
}

func TestSearchSoftFailures(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		wantReason string
	}{
		{"rate limited", http.StatusTooManyRequests, "rate limit"},
		{"bad query", http.StatusBadRequest, "bad query"},
		{"server error", http.StatusInternalServerError, "HTTP 500"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			est, reason, err := newTestClient(server.URL).Search(context.Background(), "flour")
			require.NoError(t, err)
			assert.Nil(t, est)
			assert.Contains(t, reason, tt.wantReason)
		})
	}
}

func TestSearchNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"foods":[]}`))
	}))
	defer server.Close()

	est, reason, err := newTestClient(server.URL).Search(context.Background(), "unicorn meat")
	require.NoError(t, err)
	assert.Nil(t, est)
	assert.Equal(t, "not found in USDA database", reason)
}

func TestSearchUnreachable(t *testing.T) {
	est, reason, err := newTestClient("http://127.0.0.1:1").Search(context.Background(), "flour")
	require.NoError(t, err)
	assert.Nil(t, est)
	assert.Contains(t, reason, "unreachable")
}
