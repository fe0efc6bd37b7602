package usecase

import (
	"context"
	"time"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// LeaderboardUsecase ranks per-creator accrual entries.
type LeaderboardUsecase interface {
	// Rank sorts entries by weighted composite total descending, breaking
	// ties by first-seen input order, and truncates to topN (clamped to the
	// configured maximum). Pure over its inputs.
	Rank(entries []entity.CreatorAccrual, topN int) []entity.LeaderboardEntry

	// CampaignLeaderboard computes the campaign accrual for the range and
	// returns the ranked top-N participants.
	CampaignLeaderboard(ctx context.Context, campaignID uuid.UUID, platform entity.Platform, start, end time.Time, topN int) ([]entity.LeaderboardEntry, error)
}
