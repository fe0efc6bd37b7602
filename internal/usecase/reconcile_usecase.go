package usecase

import (
	"context"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// ItemFailure records one per-item failure inside a batch run. Partial
// failures never abort the batch; they accumulate here.
type ItemFailure struct {
	CreatorID uuid.UUID       `json:"creator_id,omitempty"`
	Platform  entity.Platform `json:"platform,omitempty"`
	Handle    string          `json:"handle,omitempty"`
	Reason    string          `json:"reason"`
}

// ReconcileReport summarizes one reconciliation run.
type ReconcileReport struct {
	CampaignID      uuid.UUID           `json:"campaign_id"`
	Participants    int                 `json:"participants"`
	MappingsCreated int                 `json:"mappings_created"`
	Failures        []ItemFailure       `json:"failures,omitempty"`
	Diagnostics     []entity.Diagnostic `json:"diagnostics,omitempty"`
}

// ReconcileUsecase materializes missing handle mapping rows for a campaign.
// Runs are idempotent and safe to invoke concurrently: the desired mapping
// set is derived from the roster and resolved handle sets, compared against
// existing rows, and only the difference is written through conflict-safe
// inserts. Stale mappings are never deleted automatically.
type ReconcileUsecase interface {
	// ReconcileCampaign runs one reconciliation pass. It fails as a whole
	// only when the roster or mapping store cannot be read; per-participant
	// problems are collected into the report.
	ReconcileCampaign(ctx context.Context, campaignID uuid.UUID) (*ReconcileReport, error)
}
