package usecase

import (
	"context"
	"time"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// AccrualUsecase computes incremental engagement for a scope and date range.
// Dates are calendar days: the start date is the baseline day and growth is
// measured through the end of the end date. Missing data degrades to zero
// contributions; only unreachable stores surface as errors.
type AccrualUsecase interface {
	// AccrueForCreator computes the accrual across every handle resolved for
	// one creator. A creator with zero handles on the platform yields zero
	// totals with an empty breakdown.
	AccrueForCreator(ctx context.Context, creatorID uuid.UUID, platform entity.Platform, start, end time.Time) (*entity.AccrualResult, error)

	// AccrueForCampaign computes the campaign-level accrual plus the
	// per-participant breakdown used for reporting and ranking.
	AccrueForCampaign(ctx context.Context, campaignID uuid.UUID, platform entity.Platform, start, end time.Time) (*entity.CampaignAccrualResult, error)

	// AccrueForHandles computes the accrual for an explicit handle list.
	// Handles are normalized and deduplicated before use.
	AccrueForHandles(ctx context.Context, platform entity.Platform, handles []string, start, end time.Time) (*entity.AccrualResult, error)
}
