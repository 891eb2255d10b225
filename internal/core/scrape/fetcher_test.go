package scrape

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-calorie/internal/infrastructure/config"
	"recipe-calorie/internal/pkg/common"
)

func newTestFetcher() *Fetcher {
	return NewFetcher(&config.FetchConfig{
		Timeout:      5 * time.Second,
		MinBodyBytes: 1000,
		UserAgent:    "test-agent",
	})
}

func TestFetchSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Write([]byte("<html>recipe page</html>"))
	}))
	defer server.Close()

	body, err := newTestFetcher().Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Contains(t, body, "recipe page")
}

func TestFetchRetriesWithChallengeHeaders(t *testing.T) {
	// 第一次拒絕，帶 client hints 標頭的重試放行
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.Header.Get("Sec-Fetch-Mode") == "" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.Write([]byte("<html>let in this time</html>"))
	}))
	defer server.Close()

	body, err := newTestFetcher().Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Contains(t, body, "let in this time")
	assert.Equal(t, 2, requests)
}

func TestFetchTolerates500WithFullBody(t *testing.T) {
	// 有些網站整頁渲染完還是回 500，內容夠長就照用
	page := "<html>" + strings.Repeat("<li>1 cup flour</li>", 100) + "</html>"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(page))
	}))
	defer server.Close()

	body, err := newTestFetcher().Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, page, body)
}

func TestFetchShort500IsBlocked(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("error"))
	}))
	defer server.Close()

	_, err := newTestFetcher().Fetch(context.Background(), server.URL)
	require.Error(t, err)

	var customErr *common.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, common.ErrCodeSiteBlocked, customErr.Code)
	assert.Equal(t, http.StatusForbidden, customErr.Status)
}

func TestFetchBlockedSite(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestFetcher().Fetch(context.Background(), server.URL)
	require.Error(t, err)

	var customErr *common.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, common.ErrCodeSiteBlocked, customErr.Code)
	assert.Contains(t, customErr.Message, "HTTP 404")
}

func TestFetchTransportError(t *testing.T) {
	_, err := newTestFetcher().Fetch(context.Background(), "http://127.0.0.1:1")
	require.Error(t, err)

	var customErr *common.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, common.ErrCodeFetchFailed, customErr.Code)
	assert.Equal(t, http.StatusBadGateway, customErr.Status)
}
