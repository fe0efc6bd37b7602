// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Campaign groups a roster of creators for reporting over a shared time frame.
type Campaign struct {
	ID        uuid.UUID  `json:"id"`         // The Global Unique Identifier (GUID) for the campaign.
	Name      string     `json:"name"`       // Human-readable campaign name.
	StartsAt  *time.Time `json:"starts_at"`  // Optional nominal start of the campaign window.
	EndsAt    *time.Time `json:"ends_at"`    // Optional nominal end of the campaign window.
	CreatedAt time.Time  `json:"created_at"` // Timestamp of when the campaign was created.
	UpdatedAt time.Time  `json:"updated_at"` // Timestamp of the last modification.
}

// CampaignParticipant enrolls a creator in a campaign's roster.
type CampaignParticipant struct {
	CampaignID uuid.UUID `json:"campaign_id"` // The campaign being joined.
	CreatorID  uuid.UUID `json:"creator_id"`  // The enrolled creator.
	JoinedAt   time.Time `json:"joined_at"`   // Timestamp of enrollment.
}

// CampaignHandleOverride is a campaign-scoped handle binding for a participant.
// Overrides exist because a creator may post under a handle for one campaign
// that is not reflected in their personal profile or aliases.
type CampaignHandleOverride struct {
	ID         uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the override row.
	CampaignID uuid.UUID `json:"campaign_id"` // The campaign this override is scoped to.
	CreatorID  uuid.UUID `json:"creator_id"`  // The participant the handle belongs to.
	Platform   Platform  `json:"platform"`    // The platform the handle lives on.
	Handle     string    `json:"handle"`      // The override handle. May be raw; normalize before use.
	CreatedAt  time.Time `json:"created_at"`  // Timestamp of when the override was recorded.
}

// MappingSource tags the provenance of a materialized handle mapping.
type MappingSource string

// Known mapping provenances.
const (
	MappingSourcePrimary    MappingSource = "primary"    // Derived from the creator's profile handle field.
	MappingSourceAlias      MappingSource = "alias"      // Derived from a personal alias row.
	MappingSourceOverride   MappingSource = "override"   // Derived from a campaign participant override.
	MappingSourceReconciled MappingSource = "reconciled" // Materialized by the reconciliation engine.
)

// HandleMapping is a materialized (campaign, creator, platform, handle) row
// produced by reconciliation so later resolution is a direct lookup. The
// handle is always stored normalized. Mappings are never deleted by the
// engine; removal is an explicit operator action.
type HandleMapping struct {
	ID         uuid.UUID     `json:"id"`          // The Global Unique Identifier (GUID) for the mapping row.
	CampaignID uuid.UUID     `json:"campaign_id"` // The campaign the mapping is scoped to.
	CreatorID  uuid.UUID     `json:"creator_id"`  // The creator who owns the handle.
	Platform   Platform      `json:"platform"`    // The platform the handle lives on.
	Handle     string        `json:"handle"`      // Canonical (normalized) handle.
	Source     MappingSource `json:"source"`      // Provenance of the binding.
	CreatedAt  time.Time     `json:"created_at"`  // Timestamp of when the mapping was materialized.
}
