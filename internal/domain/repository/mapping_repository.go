// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// MappingRepository persists materialized handle mappings. Writes go through
// a conflict-safe insert keyed on the natural uniqueness constraint
// (campaign, creator, platform, handle) so concurrent reconciliation runs
// never duplicate a row. The engine never deletes mappings.
type MappingRepository interface {
	// ListCampaignMappings retrieves the existing mapping rows for a campaign
	// on one platform.
	ListCampaignMappings(ctx context.Context, campaignID uuid.UUID, platform entity.Platform) ([]*entity.HandleMapping, error)

	// CreateMappingIfAbsent inserts the mapping unless a row with the same
	// natural key already exists. Returns true when a row was created and
	// false when the mapping was already satisfied; a conflict is not an error.
	CreateMappingIfAbsent(ctx context.Context, mapping *entity.HandleMapping) (bool, error)
}
