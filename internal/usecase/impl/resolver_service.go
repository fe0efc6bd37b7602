// Package impl contains the use case implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type resolverService struct {
	profileRepo repository.ProfileRepository
	mappingRepo repository.MappingRepository
	rosterRepo  repository.RosterRepository
	logger      *slog.Logger
}

// NewResolverService creates a new identity resolver instance
func NewResolverService(
	profileRepo repository.ProfileRepository,
	mappingRepo repository.MappingRepository,
	rosterRepo repository.RosterRepository,
	logger *slog.Logger,
) usecase.ResolverUsecase {
	return &resolverService{
		profileRepo: profileRepo,
		mappingRepo: mappingRepo,
		rosterRepo:  rosterRepo,
		logger:      logger,
	}
}

// ResolveCreatorHandles unions the creator's primary profile handle, personal
// aliases and campaign overrides naming the creator, deduplicated by
// normalized value.
func (s *resolverService) ResolveCreatorHandles(ctx context.Context, creatorID uuid.UUID, platform entity.Platform) (entity.HandleSet, error) {
	creator, err := s.profileRepo.FindCreatorByID(ctx, creatorID)
	if err != nil {
		if errors.Is(err, repository.ErrCreatorNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCreatorNotFound, "creator not found")
		}

		return nil, errors.Wrap(err, "failed to find creator by ID")
	}

	handles := entity.NewHandleSet(creator.PrimaryHandle(platform))

	aliases, err := s.profileRepo.ListAliases(ctx, creatorID, platform)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list aliases")
	}
	for _, alias := range aliases {
		handles.Add(alias.Handle)
	}

	overrides, err := s.profileRepo.ListOverridesForCreator(ctx, creatorID, platform)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list overrides for creator")
	}
	for _, override := range overrides {
		handles.Add(override.Handle)
	}

	return handles, nil
}

// ResolveCampaignHandles aggregates the handle sets of all current
// participants plus the campaign's materialized mapping rows.
func (s *resolverService) ResolveCampaignHandles(ctx context.Context, campaignID uuid.UUID, platform entity.Platform) (entity.HandleSet, error) {
	byCreator, err := s.ResolveCampaignByCreator(ctx, campaignID, platform)
	if err != nil {
		return nil, err
	}

	handles := entity.NewHandleSet()
	for _, set := range byCreator {
		handles.Union(set)
	}

	return handles, nil
}

// ResolveCampaignByCreator resolves each participant's handle set for the
// campaign. Materialized mapping rows are included so handles whose source
// rows were removed after reconciliation still attribute past engagement.
func (s *resolverService) ResolveCampaignByCreator(ctx context.Context, campaignID uuid.UUID, platform entity.Platform) (map[uuid.UUID]entity.HandleSet, error) {
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

	byCreator := make(map[uuid.UUID]entity.HandleSet, len(participants))
	for _, creatorID := range participants {
		handles, err := s.resolvePersonal(ctx, creatorID, platform)
		if err != nil {
			return nil, err
		}
		byCreator[creatorID] = handles
	}

	overrides, err := s.profileRepo.ListCampaignOverrides(ctx, campaignID, platform)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list campaign overrides")
	}
	for _, override := range overrides {
		set, ok := byCreator[override.CreatorID]
		if !ok {
			// Override names a creator no longer on the roster; roster
			// membership governs campaign scope, so it is skipped.
			continue
		}
		set.Add(override.Handle)
	}

	mappings, err := s.mappingRepo.ListCampaignMappings(ctx, campaignID, platform)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list campaign mappings")
	}
	for _, mapping := range mappings {
		set, ok := byCreator[mapping.CreatorID]
		if !ok {
			continue
		}
		set.Add(mapping.Handle)
	}

	return byCreator, nil
}

// DetectCollisions flags handles claimed by more than one creator. No
// arbitration happens here; misattributing engagement by guessing an owner is
// worse than reporting the conflict.
func (s *resolverService) DetectCollisions(ctx context.Context, platform entity.Platform, handles entity.HandleSet) ([]entity.Diagnostic, error) {
	var diagnostics []entity.Diagnostic

	for _, handle := range handles.Values() {
		owners, err := s.profileRepo.FindHandleOwners(ctx, platform, handle)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find handle owners")
		}
		if len(owners) <= 1 {
			continue
		}

		s.logger.Warn("handle claimed by multiple creators",
			slog.String("platform", string(platform)),
			slog.String("handle", handle),
			slog.Int("owners", len(owners)),
		)

		diagnostics = append(diagnostics, entity.Diagnostic{
			Kind:     entity.DiagnosticHandleCollision,
			Platform: platform,
			Handle:   handle,
			Creators: owners,
			Detail:   fmt.Sprintf("handle claimed by %d creators", len(owners)),
		})
	}

	return diagnostics, nil
}

// resolvePersonal is ResolveCreatorHandles minus the cross-campaign override
// rows; campaign scoping adds overrides for the one campaign being resolved.
func (s *resolverService) resolvePersonal(ctx context.Context, creatorID uuid.UUID, platform entity.Platform) (entity.HandleSet, error) {
	creator, err := s.profileRepo.FindCreatorByID(ctx, creatorID)
	if err != nil {
		if errors.Is(err, repository.ErrCreatorNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCreatorNotFound, "creator not found")
		}

		return nil, errors.Wrap(err, "failed to find creator by ID")
	}

	handles := entity.NewHandleSet(creator.PrimaryHandle(platform))

	aliases, err := s.profileRepo.ListAliases(ctx, creatorID, platform)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list aliases")
	}
	for _, alias := range aliases {
		handles.Add(alias.Handle)
	}

	return handles, nil
}
