// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// ResolverUsecase expands tracked entities into canonical handle sets. All
// handle sources (primary profile field, personal aliases, campaign
// participant overrides, materialized mappings) expose the same read contract
// and are combined by set union, so new alias sources never touch the
// delta-computation logic.
type ResolverUsecase interface {
	// ResolveCreatorHandles returns the complete canonical handle set for one
	// creator on a platform: the primary profile field, every personal alias
	// row and every campaign override row naming the creator, normalized and
	// deduplicated. A creator with no handles resolves to an empty set.
	ResolveCreatorHandles(ctx context.Context, creatorID uuid.UUID, platform entity.Platform) (entity.HandleSet, error)

	// ResolveCampaignHandles returns the aggregate handle set across all
	// current participants of a campaign, including materialized mapping rows.
	ResolveCampaignHandles(ctx context.Context, campaignID uuid.UUID, platform entity.Platform) (entity.HandleSet, error)

	// ResolveCampaignByCreator returns the per-participant handle sets for a
	// campaign, used for per-creator attribution of campaign accruals.
	ResolveCampaignByCreator(ctx context.Context, campaignID uuid.UUID, platform entity.Platform) (map[uuid.UUID]entity.HandleSet, error)

	// DetectCollisions reports every handle in the set that is claimed by
	// more than one creator. Collisions are diagnostics for operators; the
	// resolver never arbitrates ownership.
	DetectCollisions(ctx context.Context, platform entity.Platform, handles entity.HandleSet) ([]entity.Diagnostic, error)
}
