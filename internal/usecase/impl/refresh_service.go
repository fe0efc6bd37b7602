package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pulse/config"
	"pulse/internal/domain/entity"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	"pulse/internal/usecase"
	"pulse/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type refreshService struct {
	resolver     usecase.ResolverUsecase
	snapshotRepo repository.SnapshotRepository
	fetcher      service.PlatformFetcher
	config       *config.Config
	logger       *slog.Logger
}

// NewRefreshService creates a new snapshot refresh instance
func NewRefreshService(
	resolver usecase.ResolverUsecase,
	snapshotRepo repository.SnapshotRepository,
	fetcher service.PlatformFetcher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.RefreshUsecase {
	return &refreshService{
		resolver:     resolver,
		snapshotRepo: snapshotRepo,
		fetcher:      fetcher,
		config:       cfg,
		logger:       logger,
	}
}

// RefreshCampaign captures a fresh snapshot for every handle the campaign
// tracks. External calls run under the configured concurrency limit with a
// per-call timeout; each failure is recorded per item and the pass continues.
// The pass as a whole fails only when the handle set cannot be resolved.
func (s *refreshService) RefreshCampaign(ctx context.Context, campaignID uuid.UUID, platform entity.Platform) (*usecase.RefreshReport, error) {
	if !platform.Valid() {
		return nil, ErrUnsupportedPlatform
	}

	started := time.Now()

	handles, err := s.resolver.ResolveCampaignHandles(ctx, campaignID, platform)
	if err != nil {
		return nil, err
	}

	report := &usecase.RefreshReport{
		CampaignID: campaignID,
		Platform:   platform,
		Requested:  handles.Len(),
	}

	var mu sync.Mutex
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.config.Refresh.Concurrency)

	for _, handle := range handles.Values() {
		group.Go(func() error {
			callCtx, cancel := context.WithTimeout(groupCtx, s.config.Refresh.PerCallTimeout)
			defer cancel()

			snapshot, err := s.fetcher.FetchAccountSnapshot(callCtx, platform, handle)
			var unchanged bool
			if err == nil {
				unchanged = s.countersUnchanged(callCtx, snapshot)
			}
			if err == nil && !unchanged {
				err = s.snapshotRepo.RecordSnapshot(callCtx, snapshot)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failures = append(report.Failures, usecase.ItemFailure{
					Platform: platform,
					Handle:   handle,
					Reason:   err.Error(),
				})

				// Failures are per item; returning nil keeps the group going.
				return nil
			}
			if unchanged {
				report.Unchanged++
			} else {
				report.Recorded++
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	s.logger.Info("snapshot refresh completed",
		slog.String("campaign_id", campaignID.String()),
		slog.String("platform", string(platform)),
		slog.Int("requested", report.Requested),
		slog.Int("recorded", report.Recorded),
		slog.Int("unchanged", report.Unchanged),
		slog.Int("failures", len(report.Failures)),
		slog.String("elapsed", util.FormatDuration(time.Since(started))),
	)

	return report, nil
}

// countersUnchanged reports whether the store's latest capture for the item
// already holds the fetched counter values. The captures table is append-only
// and an identical consecutive row adds nothing to any delta, so such rows
// are skipped. A failed lookup never drops a capture; the row is recorded.
func (s *refreshService) countersUnchanged(ctx context.Context, snapshot *entity.MetricSnapshot) bool {
	latest, err := s.snapshotRepo.LatestAtOrBefore(ctx, snapshot.Platform, snapshot.ItemKey, snapshot.CapturedAt)
	if err != nil {
		if !errors.Is(err, repository.ErrSnapshotNotFound) {
			s.logger.Warn("failed to look up latest capture",
				slog.String("item_key", snapshot.ItemKey),
				slog.Any("error", err),
			)
		}

		return false
	}

	return latest.Counters == snapshot.Counters
}
