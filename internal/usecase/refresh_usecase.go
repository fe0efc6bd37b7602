package usecase

import (
	"context"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// RefreshReport summarizes one snapshot refresh pass.
type RefreshReport struct {
	CampaignID uuid.UUID       `json:"campaign_id"`
	Platform   entity.Platform `json:"platform"`
	Requested  int             `json:"requested"`
	Recorded   int             `json:"recorded"`
	Unchanged  int             `json:"unchanged"`
	Failures   []ItemFailure   `json:"failures,omitempty"`
}

// RefreshUsecase captures fresh counter snapshots for every handle tracked by
// a campaign. External calls run under a bounded concurrency limit with
// per-call timeouts; a stuck or permanently failing call is recorded as a
// per-item failure and never blocks the rest of the pass.
type RefreshUsecase interface {
	RefreshCampaign(ctx context.Context, campaignID uuid.UUID, platform entity.Platform) (*RefreshReport, error)
}
