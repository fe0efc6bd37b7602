// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pulse/internal/domain/entity"
	"pulse/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for profile persistence.
var (
	// ErrCreatorNotFound is returned when a creator is not found.
	ErrCreatorNotFound = errors.New("creator not found")
)

// ProfileRepository reads the profile fields and alias tables that feed
// identity resolution. All handle values returned may be raw; callers
// normalize at the boundary.
type ProfileRepository interface {
	// FindCreatorByID retrieves a creator by their unique ID.
	FindCreatorByID(ctx context.Context, id uuid.UUID) (*entity.Creator, error)

	// FindCreatorsByIDs retrieves several creators at once, keyed by ID.
	// Missing IDs are simply absent from the result, not an error.
	FindCreatorsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Creator, error)

	// ListAliases retrieves the personal alias rows for a creator on one platform.
	ListAliases(ctx context.Context, creatorID uuid.UUID, platform entity.Platform) ([]*entity.HandleAlias, error)

	// ListCampaignOverrides retrieves all campaign-scoped handle overrides for
	// a campaign on one platform.
	ListCampaignOverrides(ctx context.Context, campaignID uuid.UUID, platform entity.Platform) ([]*entity.CampaignHandleOverride, error)

	// ListOverridesForCreator retrieves the campaign-scoped handle overrides
	// naming a creator on one platform, across all campaigns.
	ListOverridesForCreator(ctx context.Context, creatorID uuid.UUID, platform entity.Platform) ([]*entity.CampaignHandleOverride, error)

	// FindHandleOwners returns the distinct creator IDs that claim the given
	// normalized handle on a platform, across profile fields, aliases and
	// overrides. More than one owner is a data-quality condition the caller
	// surfaces, never arbitrates.
	FindHandleOwners(ctx context.Context, platform entity.Platform, handle string) ([]uuid.UUID, error)
}
