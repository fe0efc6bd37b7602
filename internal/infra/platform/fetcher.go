// Package platform implements the outbound clients for the social platform
// metric APIs.
package platform

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"pulse/config"
	"pulse/internal/domain/entity"
	"pulse/internal/domain/service"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

const fetchClientTimeout = 15 * time.Second

// Fetcher implements service.PlatformFetcher over the per-platform metric
// API endpoints. Transient upstream failures are retried with backoff; a
// non-2xx terminal response surfaces as an error for the caller's per-item
// failure handling.
type Fetcher struct {
	config *config.Config
	client *retryablehttp.Client
	logger *slog.Logger
}

// NewFetcher creates a new platform metric fetcher
func NewFetcher(cfg *config.Config, logger *slog.Logger) service.PlatformFetcher {
	client := retryablehttp.NewClient()
	client.RetryMax = cfg.Refresh.MaxRetries
	client.HTTPClient.Timeout = fetchClientTimeout
	client.Logger = nil

	return &Fetcher{
		config: cfg,
		client: client,
		logger: logger,
	}
}

// FetchAccountSnapshot reads the current cumulative account-level counters
// for a handle. The returned snapshot uses the handle as its item key.
func (f *Fetcher) FetchAccountSnapshot(ctx context.Context, platform entity.Platform, handle string) (*entity.MetricSnapshot, error) {
	endpoint, err := f.endpointFor(platform)
	if err != nil {
		return nil, err
	}

	canonical := entity.NormalizeHandle(handle)
	if canonical == "" {
		return nil, errors.New("empty handle")
	}

	reqURL := endpoint.BaseURL + "/v1/accounts/" + url.PathEscape(canonical) + "/metrics"

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build metrics request")
	}
	req.Header.Set("Accept", "application/json")
	if endpoint.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+endpoint.APIKey)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch account metrics")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read metrics response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("metrics endpoint returned status %d for %s/%s",
			resp.StatusCode, platform, canonical)
	}

	snapshot := &entity.MetricSnapshot{
		ID:       uuid.New(),
		ItemKey:  canonical,
		Handle:   canonical,
		Platform: platform,
		Counters: entity.MetricTotals{
			Views:    gjson.GetBytes(body, "views").Int(),
			Likes:    gjson.GetBytes(body, "likes").Int(),
			Comments: gjson.GetBytes(body, "comments").Int(),
			Shares:   gjson.GetBytes(body, "shares").Int(),
			Saves:    gjson.GetBytes(body, "saves").Int(),
		},
		CapturedAt: time.Now().UTC(),
	}

	// Honor an upstream capture timestamp when the API reports one.
	if capturedAt := gjson.GetBytes(body, "captured_at").Str; capturedAt != "" {
		if parsed, parseErr := time.Parse(time.RFC3339, capturedAt); parseErr == nil {
			snapshot.CapturedAt = parsed.UTC()
		}
	}

	f.logger.Debug("fetched account metrics",
		slog.String("platform", string(platform)),
		slog.String("handle", canonical),
		slog.Int64("views", snapshot.Counters.Views),
	)

	return snapshot, nil
}

func (f *Fetcher) endpointFor(platform entity.Platform) (*config.PlatformEndpoint, error) {
	if f.config.Platforms == nil {
		return nil, errors.Errorf("no endpoint configured for platform %s", platform)
	}

	var endpoint *config.PlatformEndpoint
	switch platform {
	case entity.PlatformTikTok:
		endpoint = f.config.Platforms.TikTok
	case entity.PlatformInstagram:
		endpoint = f.config.Platforms.Instagram
	case entity.PlatformYouTube:
		endpoint = f.config.Platforms.YouTube
	default:
		return nil, errors.Errorf("unknown platform: %s", platform)
	}

	if endpoint == nil || endpoint.BaseURL == "" {
		return nil, errors.Errorf("no endpoint configured for platform %s", platform)
	}

	return endpoint, nil
}
