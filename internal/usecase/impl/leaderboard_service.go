package impl

import (
	"context"
	"sort"
	"time"

	"pulse/config"
	"pulse/internal/domain/entity"
	"pulse/internal/usecase"

	"github.com/google/uuid"
)

type leaderboardService struct {
	accrualUC usecase.AccrualUsecase
	config    *config.Config
}

// NewLeaderboardService creates a new leaderboard aggregator instance
func NewLeaderboardService(accrualUC usecase.AccrualUsecase, cfg *config.Config) usecase.LeaderboardUsecase {
	return &leaderboardService{
		accrualUC: accrualUC,
		config:    cfg,
	}
}

// Rank orders entries by weighted composite total descending. The sort is
// stable, so entries with equal scores keep their first-seen input order and
// repeated calls on identical input produce identical output. topN is clamped
// to the configured maximum to bound response size.
func (s *leaderboardService) Rank(entries []entity.CreatorAccrual, topN int) []entity.LeaderboardEntry {
	weights := s.config.LeaderboardWeights()

	ranked := make([]entity.LeaderboardEntry, 0, len(entries))
	for _, entry := range entries {
		ranked = append(ranked, entity.LeaderboardEntry{
			CreatorID: entry.CreatorID,
			Name:      entry.Name,
			Totals:    entry.Totals,
			Score:     entry.Totals.Score(weights),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if topN <= 0 {
		topN = s.config.Leaderboard.DefaultTopN
	}
	if topN > s.config.Leaderboard.MaxTopN {
		topN = s.config.Leaderboard.MaxTopN
	}
	if topN < len(ranked) {
		ranked = ranked[:topN]
	}

	for i := range ranked {
		ranked[i].Position = i + 1
	}

	return ranked
}

// CampaignLeaderboard accrues the campaign over the range and ranks the
// per-participant breakdown.
func (s *leaderboardService) CampaignLeaderboard(ctx context.Context, campaignID uuid.UUID, platform entity.Platform, start, end time.Time, topN int) ([]entity.LeaderboardEntry, error) {
	result, err := s.accrualUC.AccrueForCampaign(ctx, campaignID, platform, start, end)
	if err != nil {
		return nil, err
	}

	return s.Rank(result.Creators, topN), nil
}
