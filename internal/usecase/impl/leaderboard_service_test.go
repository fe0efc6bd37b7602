package impl

import (
	"context"
	"testing"
	"time"

	"pulse/internal/domain/entity"
	mockUC "pulse/internal/mocks/usecase"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// leaderboardServiceFixtures holds all test dependencies for leaderboard tests.
type leaderboardServiceFixtures struct {
	service   usecase.LeaderboardUsecase
	accrualUC *mockUC.MockAccrualUsecase
}

func createTestLeaderboardService(t *testing.T) leaderboardServiceFixtures {
	accrualUC := mockUC.NewMockAccrualUsecase(t)
	service := NewLeaderboardService(accrualUC, newTestConfig())

	return leaderboardServiceFixtures{
		service:   service,
		accrualUC: accrualUC,
	}
}

func creatorAccrual(name string, views int64) entity.CreatorAccrual {
	return entity.CreatorAccrual{
		CreatorID: uuid.New(),
		Name:      name,
		Totals:    entity.MetricTotals{Views: views},
	}
}

func TestLeaderboardService_Rank_OrdersByScoreDescending(t *testing.T) {
	fx := createTestLeaderboardService(t)

	entries := []entity.CreatorAccrual{
		creatorAccrual("low", 10),
		creatorAccrual("high", 100),
		creatorAccrual("mid", 50),
	}

	ranked := fx.service.Rank(entries, 10)

	require.Len(t, ranked, 3)
	assert.Equal(t, "high", ranked[0].Name)
	assert.Equal(t, "mid", ranked[1].Name)
	assert.Equal(t, "low", ranked[2].Name)
	assert.Equal(t, 1, ranked[0].Position)
	assert.Equal(t, 2, ranked[1].Position)
	assert.Equal(t, 3, ranked[2].Position)
	assert.Equal(t, float64(100), ranked[0].Score)
}

func TestLeaderboardService_Rank_StableOnTies(t *testing.T) {
	fx := createTestLeaderboardService(t)

	first := creatorAccrual("first", 50)
	second := creatorAccrual("second", 50)

	ranked := fx.service.Rank([]entity.CreatorAccrual{first, second}, 10)

	require.Len(t, ranked, 2)
	// Equal scores keep input order, so repeated calls give identical output.
	assert.Equal(t, first.CreatorID, ranked[0].CreatorID)
	assert.Equal(t, second.CreatorID, ranked[1].CreatorID)
}

func TestLeaderboardService_Rank_TruncatesToTopN(t *testing.T) {
	fx := createTestLeaderboardService(t)

	entries := []entity.CreatorAccrual{
		creatorAccrual("a", 30),
		creatorAccrual("b", 20),
		creatorAccrual("c", 10),
	}

	ranked := fx.service.Rank(entries, 2)

	require.Len(t, ranked, 2)
	assert.Equal(t, "a", ranked[0].Name)
	assert.Equal(t, "b", ranked[1].Name)
}

func TestLeaderboardService_Rank_DefaultsAndClampsTopN(t *testing.T) {
	fx := createTestLeaderboardService(t)

	entries := make([]entity.CreatorAccrual, 0, 120)
	for i := 0; i < 120; i++ {
		entries = append(entries, creatorAccrual("creator", int64(i)))
	}

	// topN <= 0 falls back to the configured default.
	assert.Len(t, fx.service.Rank(entries, 0), 10)
	// topN above the configured maximum is clamped.
	assert.Len(t, fx.service.Rank(entries, 500), 100)
}

func TestLeaderboardService_Rank_WeightedScore(t *testing.T) {
	accrualUC := mockUC.NewMockAccrualUsecase(t)
	cfg := newTestConfig()
	cfg.Leaderboard.Weights = &entity.MetricWeights{Views: 0, Likes: 2, Comments: 1, Shares: 1, Saves: 1}
	service := NewLeaderboardService(accrualUC, cfg)

	viewsOnly := entity.CreatorAccrual{CreatorID: uuid.New(), Name: "views", Totals: entity.MetricTotals{Views: 1000}}
	engaged := entity.CreatorAccrual{CreatorID: uuid.New(), Name: "engaged", Totals: entity.MetricTotals{Likes: 10, Comments: 5}}

	ranked := service.Rank([]entity.CreatorAccrual{viewsOnly, engaged}, 10)

	require.Len(t, ranked, 2)
	assert.Equal(t, "engaged", ranked[0].Name)
	assert.Equal(t, float64(25), ranked[0].Score)
	assert.Equal(t, float64(0), ranked[1].Score)
}

func TestLeaderboardService_CampaignLeaderboard_RanksBreakdown(t *testing.T) {
	fx := createTestLeaderboardService(t)

	ctx := context.Background()
	campaignID := uuid.New()
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)

	fx.accrualUC.EXPECT().AccrueForCampaign(ctx, campaignID, entity.PlatformTikTok, start, end).
		Return(&entity.CampaignAccrualResult{
			CampaignID: campaignID,
			Creators: []entity.CreatorAccrual{
				creatorAccrual("runner-up", 40),
				creatorAccrual("winner", 90),
			},
		}, nil)

	ranked, err := fx.service.CampaignLeaderboard(ctx, campaignID, entity.PlatformTikTok, start, end, 10)

	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "winner", ranked[0].Name)
	assert.Equal(t, 1, ranked[0].Position)
}

func TestLeaderboardService_CampaignLeaderboard_AccrualError(t *testing.T) {
	fx := createTestLeaderboardService(t)

	ctx := context.Background()
	campaignID := uuid.New()
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	fx.accrualUC.EXPECT().AccrueForCampaign(ctx, campaignID, entity.PlatformTikTok, start, start).
		Return(nil, errors.New("resolver unavailable"))

	ranked, err := fx.service.CampaignLeaderboard(ctx, campaignID, entity.PlatformTikTok, start, start, 10)

	assert.Error(t, err)
	assert.Nil(t, ranked)
}
