package service

import (
	"context"

	"pulse/internal/domain/entity"
)

// PlatformFetcher is the narrow boundary to the external platform-scraping
// integrations. Implementations perform their own bounded retries on
// transient failures; a permanent failure for one handle is reported to the
// caller and must not abort a batch.
type PlatformFetcher interface {
	// FetchAccountSnapshot captures the current cumulative counters for one
	// normalized handle on a platform.
	FetchAccountSnapshot(ctx context.Context, platform entity.Platform, handle string) (*entity.MetricSnapshot, error)
}
