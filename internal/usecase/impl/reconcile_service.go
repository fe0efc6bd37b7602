package impl

import (
	"context"
	"log/slog"
	"time"

	"pulse/config"
	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type reconcileService struct {
	resolver    usecase.ResolverUsecase
	rosterRepo  repository.RosterRepository
	mappingRepo repository.MappingRepository
	publisher   service.EventPublisher
	config      *config.Config
	logger      *slog.Logger
}

// NewReconcileService creates a new reconciliation engine instance
func NewReconcileService(
	resolver usecase.ResolverUsecase,
	rosterRepo repository.RosterRepository,
	mappingRepo repository.MappingRepository,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ReconcileUsecase {
	return &reconcileService{
		resolver:    resolver,
		rosterRepo:  rosterRepo,
		mappingRepo: mappingRepo,
		publisher:   publisher,
		config:      cfg,
		logger:      logger,
	}
}

// ReconcileCampaign materializes missing mapping rows for every participant
// and configured platform. The run is idempotent: desired mappings are
// derived from resolved handle sets, compared against existing rows, and
// only the difference is written through conflict-safe inserts. A conflict
// means a concurrent run already satisfied the row and is not a failure.
func (s *reconcileService) ReconcileCampaign(ctx context.Context, campaignID uuid.UUID) (*usecase.ReconcileReport, error) {
	if _, err := s.rosterRepo.FindCampaignByID(ctx, campaignID); err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCampaignNotFound, "campaign not found")
		}

		return nil, errors.Wrap(err, "failed to find campaign by ID")
	}

	participants, err := s.rosterRepo.ListParticipants(ctx, campaignID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list participants")
	}

	report := &usecase.ReconcileReport{
		CampaignID:   campaignID,
		Participants: len(participants),
	}

	for _, platform := range s.config.ReconcilePlatforms() {
		if err := s.reconcilePlatform(ctx, campaignID, platform, participants, report); err != nil {
			return nil, err
		}
	}

	s.publishCompleted(ctx, campaignID, report.MappingsCreated)

	return report, nil
}

func (s *reconcileService) reconcilePlatform(ctx context.Context, campaignID uuid.UUID, platform entity.Platform, participants []uuid.UUID, report *usecase.ReconcileReport) error {
	existing, err := s.mappingRepo.ListCampaignMappings(ctx, campaignID, platform)
	if err != nil {
		// Without the existing rows the work items cannot be enumerated;
		// this fails the batch rather than risking duplicate work.
		return errors.Wrap(err, "failed to list campaign mappings")
	}

	existingByCreator := make(map[uuid.UUID]entity.HandleSet, len(participants))
	for _, mapping := range existing {
		set, ok := existingByCreator[mapping.CreatorID]
		if !ok {
			set = entity.NewHandleSet()
			existingByCreator[mapping.CreatorID] = set
		}
		set.Add(mapping.Handle)
	}

	union := entity.NewHandleSet()

	for _, creatorID := range participants {
		desired, err := s.resolver.ResolveCreatorHandles(ctx, creatorID, platform)
		if err != nil {
			report.Failures = append(report.Failures, usecase.ItemFailure{
				CreatorID: creatorID,
				Platform:  platform,
				Reason:    err.Error(),
			})

			continue
		}
		union.Union(desired)

		existingSet := existingByCreator[creatorID]
		for _, handle := range desired.Values() {
			if existingSet != nil && existingSet.Contains(handle) {
				continue
			}

			created, err := s.mappingRepo.CreateMappingIfAbsent(ctx, &entity.HandleMapping{
				ID:         uuid.New(),
				CampaignID: campaignID,
				CreatorID:  creatorID,
				Platform:   platform,
				Handle:     handle,
				Source:     entity.MappingSourceReconciled,
				CreatedAt:  time.Now(),
			})
			if err != nil {
				report.Failures = append(report.Failures, usecase.ItemFailure{
					CreatorID: creatorID,
					Platform:  platform,
					Handle:    handle,
					Reason:    err.Error(),
				})

				continue
			}
			if created {
				report.MappingsCreated++
			}
		}
	}

	collisions, err := s.resolver.DetectCollisions(ctx, platform, union)
	if err != nil {
		// Mappings for this platform are already written; losing the report
		// over a diagnostics lookup would discard that work. Record the
		// failure and keep the totals.
		s.logger.Warn("collision detection failed",
			slog.String("campaign_id", campaignID.String()),
			slog.String("platform", string(platform)),
			slog.Any("error", err),
		)
		report.Failures = append(report.Failures, usecase.ItemFailure{
			Platform: platform,
			Reason:   errors.Wrap(err, "failed to detect collisions").Error(),
		})

		return nil
	}
	report.Diagnostics = append(report.Diagnostics, collisions...)

	return nil
}

// publishCompleted emits the completion event. Publishing is advisory; a
// failed publish never fails an otherwise successful reconciliation.
func (s *reconcileService) publishCompleted(ctx context.Context, campaignID uuid.UUID, created int) {
	if s.publisher == nil {
		return
	}

	event := &service.SyncEvent{
		Type:            service.EventTypeReconcileCompleted,
		CampaignID:      campaignID.String(),
		MappingsCreated: created,
		OccurredAt:      time.Now().UTC(),
	}
	if err := s.publisher.PublishSyncEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish reconcile event",
			slog.String("campaign_id", campaignID.String()),
			slog.Any("error", err),
		)
	}
}
