package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"pulse/config"
	"pulse/internal/domain/accrual"
	"pulse/internal/domain/entity"
	"pulse/internal/domain/repository"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedPlatform is returned for a platform the tracker does not know
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	// ErrInvalidRange is returned when the range end precedes the range start
	ErrInvalidRange = errors.New("range end precedes range start")
)

type accrualService struct {
	resolver     usecase.ResolverUsecase
	snapshotRepo repository.SnapshotRepository
	profileRepo  repository.ProfileRepository
	config       *config.Config
	logger       *slog.Logger
}

// NewAccrualService creates a new accrual calculator instance
func NewAccrualService(
	resolver usecase.ResolverUsecase,
	snapshotRepo repository.SnapshotRepository,
	profileRepo repository.ProfileRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AccrualUsecase {
	return &accrualService{
		resolver:     resolver,
		snapshotRepo: snapshotRepo,
		profileRepo:  profileRepo,
		config:       cfg,
		logger:       logger,
	}
}

// AccrueForCreator computes the accrual across the creator's resolved handles.
func (s *accrualService) AccrueForCreator(ctx context.Context, creatorID uuid.UUID, platform entity.Platform, start, end time.Time) (*entity.AccrualResult, error) {
	if err := validateRange(platform, start, end); err != nil {
		return nil, err
	}

	handles, err := s.resolver.ResolveCreatorHandles(ctx, creatorID, platform)
	if err != nil {
		return nil, err
	}

	result, err := s.accrueHandleSet(ctx, platform, handles, start, end)
	if err != nil {
		return nil, err
	}

	collisions, err := s.resolver.DetectCollisions(ctx, platform, handles)
	if err != nil {
		return nil, err
	}
	result.Diagnostics = append(result.Diagnostics, collisions...)

	return result, nil
}

// AccrueForCampaign computes campaign totals plus the per-participant
// breakdown. The campaign total is computed over the union set once, so a
// handle shared by two participants is never double counted at campaign
// level; per-creator attribution credits every claimant and flags the
// collision.
func (s *accrualService) AccrueForCampaign(ctx context.Context, campaignID uuid.UUID, platform entity.Platform, start, end time.Time) (*entity.CampaignAccrualResult, error) {
	if err := validateRange(platform, start, end); err != nil {
		return nil, err
	}

	byCreator, err := s.resolver.ResolveCampaignByCreator(ctx, campaignID, platform)
	if err != nil {
		return nil, err
	}

	union := entity.NewHandleSet()
	for _, set := range byCreator {
		union.Union(set)
	}

	result, err := s.accrueHandleSet(ctx, platform, union, start, end)
	if err != nil {
		return nil, err
	}

	collisions, err := s.resolver.DetectCollisions(ctx, platform, union)
	if err != nil {
		return nil, err
	}
	result.Diagnostics = append(result.Diagnostics, collisions...)

	campaignResult := &entity.CampaignAccrualResult{
		CampaignID: campaignID,
		Result:     *result,
		Creators:   attributeToCreators(result.Breakdown, byCreator, s.creatorNames(ctx, byCreator)),
	}

	return campaignResult, nil
}

// AccrueForHandles computes the accrual for an explicit handle list.
func (s *accrualService) AccrueForHandles(ctx context.Context, platform entity.Platform, handles []string, start, end time.Time) (*entity.AccrualResult, error) {
	if err := validateRange(platform, start, end); err != nil {
		return nil, err
	}

	return s.accrueHandleSet(ctx, platform, entity.NewHandleSet(handles...), start, end)
}

// accrueHandleSet pulls the snapshot window (widened backward by the
// configured lookback so a baseline exists before the range start) and runs
// the pure cumulative-to-delta conversion. An empty handle set degrades to a
// zero result, never an error.
func (s *accrualService) accrueHandleSet(ctx context.Context, platform entity.Platform, handles entity.HandleSet, start, end time.Time) (*entity.AccrualResult, error) {
	from, to := accrual.WindowBounds(start, end)

	result := entity.AccrualResult{
		Platform: platform,
		From:     from,
		To:       to,
	}
	if handles.Len() == 0 {
		return &result, nil
	}

	queryFrom := from.AddDate(0, 0, -s.config.Accrual.LookbackDays)
	snapshots, err := s.snapshotRepo.SnapshotsInWindow(ctx, platform, handles.Values(), queryFrom, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query snapshots in window")
	}

	result = accrual.Convert(platform, snapshots, from, to)

	return &result, nil
}

// creatorNames bulk-loads display names for the per-creator breakdown. Names
// decorate the result; a failed lookup degrades to ID-only entries rather
// than failing the accrual.
func (s *accrualService) creatorNames(ctx context.Context, byCreator map[uuid.UUID]entity.HandleSet) map[uuid.UUID]string {
	if len(byCreator) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(byCreator))
	for creatorID := range byCreator {
		ids = append(ids, creatorID)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})

	creators, err := s.profileRepo.FindCreatorsByIDs(ctx, ids)
	if err != nil {
		s.logger.Warn("failed to load creator names", slog.Any("error", err))

		return nil
	}

	names := make(map[uuid.UUID]string, len(creators))
	for creatorID, creator := range creators {
		names[creatorID] = creator.Name
	}

	return names
}

// attributeToCreators sums item deltas into per-creator totals by handle
// membership. Deltas on a handle claimed by several participants credit each
// claimant; the collision diagnostic on the campaign result flags the
// condition for operators.
func attributeToCreators(breakdown []entity.ItemDelta, byCreator map[uuid.UUID]entity.HandleSet, names map[uuid.UUID]string) []entity.CreatorAccrual {
	creatorIDs := make([]uuid.UUID, 0, len(byCreator))
	for creatorID := range byCreator {
		creatorIDs = append(creatorIDs, creatorID)
	}
	sort.Slice(creatorIDs, func(i, j int) bool {
		return creatorIDs[i].String() < creatorIDs[j].String()
	})

	creators := make([]entity.CreatorAccrual, 0, len(creatorIDs))
	for _, creatorID := range creatorIDs {
		handles := byCreator[creatorID]
		entry := entity.CreatorAccrual{
			CreatorID: creatorID,
			Name:      names[creatorID],
			Handles:   handles.Values(),
		}
		for _, item := range breakdown {
			if handles.Contains(item.Handle) {
				entry.Totals.Add(item.Delta)
			}
		}
		creators = append(creators, entry)
	}

	return creators
}

func validateRange(platform entity.Platform, start, end time.Time) error {
	if !platform.Valid() {
		return ErrUnsupportedPlatform
	}
	if end.Before(start) {
		return ErrInvalidRange
	}

	return nil
}
