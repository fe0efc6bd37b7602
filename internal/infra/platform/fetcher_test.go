package platform

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pulse/config"
	"pulse/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFetcherTestConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.Refresh = &config.RefreshConfig{Concurrency: 1, MaxRetries: 0, PerCallTimeout: time.Second}
	cfg.Platforms = &config.PlatformsConfig{
		TikTok: &config.PlatformEndpoint{BaseURL: baseURL, APIKey: "test-key"},
	}

	return cfg
}

func TestFetcher_FetchAccountSnapshot_ParsesCounters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/accounts/alice/metrics", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"views": 1200, "likes": 340, "comments": 25, "shares": 10, "saves": 4,
			"captured_at": "2026-03-10T08:30:00Z"
		}`))
	}))
	defer server.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fetcher := NewFetcher(newFetcherTestConfig(server.URL), logger)

	snapshot, err := fetcher.FetchAccountSnapshot(context.Background(), entity.PlatformTikTok, "@Alice")

	require.NoError(t, err)
	assert.Equal(t, "alice", snapshot.Handle)
	assert.Equal(t, "alice", snapshot.ItemKey)
	assert.Equal(t, entity.PlatformTikTok, snapshot.Platform)
	assert.Equal(t, int64(1200), snapshot.Counters.Views)
	assert.Equal(t, int64(340), snapshot.Counters.Likes)
	assert.Equal(t, int64(4), snapshot.Counters.Saves)
	assert.Equal(t, time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC), snapshot.CapturedAt)
}

func TestFetcher_FetchAccountSnapshot_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fetcher := NewFetcher(newFetcherTestConfig(server.URL), logger)

	snapshot, err := fetcher.FetchAccountSnapshot(context.Background(), entity.PlatformTikTok, "alice")

	assert.Error(t, err)
	assert.Nil(t, snapshot)
	assert.Contains(t, err.Error(), "404")
}

func TestFetcher_FetchAccountSnapshot_UnconfiguredPlatform(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fetcher := NewFetcher(newFetcherTestConfig("http://localhost:1"), logger)

	_, err := fetcher.FetchAccountSnapshot(context.Background(), entity.PlatformYouTube, "alice")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no endpoint configured")
}

func TestFetcher_FetchAccountSnapshot_EmptyHandle(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fetcher := NewFetcher(newFetcherTestConfig("http://localhost:1"), logger)

	_, err := fetcher.FetchAccountSnapshot(context.Background(), entity.PlatformTikTok, "@@@")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "empty handle")
}
