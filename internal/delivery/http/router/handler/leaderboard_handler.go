package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"pulse/internal/delivery/http/response"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LeaderboardHandlerParams holds dependencies for LeaderboardHandler, injected by Fx.
type LeaderboardHandlerParams struct {
	fx.In

	LeaderboardUC usecase.LeaderboardUsecase
	Logger        *slog.Logger
}

// LeaderboardHandler holds dependencies for leaderboard endpoints
type LeaderboardHandler struct {
	leaderboardUC usecase.LeaderboardUsecase
	logger        *slog.Logger
}

// NewLeaderboardHandler is the constructor for LeaderboardHandler
func NewLeaderboardHandler(params LeaderboardHandlerParams) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardUC: params.LeaderboardUC,
		logger:        params.Logger,
	}
}

// GetCampaignLeaderboard handles ranking campaign participants by accrued
// engagement over a date range
func (h *LeaderboardHandler) GetCampaignLeaderboard(c echo.Context) error {
	campaignID, err := uuid.Parse(c.Param("campaignId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid campaign ID")
	}

	platform, ok := queryPlatform(c)
	if !ok {
		return response.BadRequest(c, "INVALID_PLATFORM", "Unsupported or missing platform")
	}

	start, end, err := queryDateRange(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE_RANGE", "Dates must use YYYY-MM-DD format with end not before start")
	}

	// topN of 0 falls back to the configured default; out-of-range values
	// are clamped by the use case.
	topN := 0
	if raw := c.QueryParam("top_n"); raw != "" {
		topN, err = strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "top_n must be an integer")
		}
	}

	entries, err := h.leaderboardUC.CampaignLeaderboard(c.Request().Context(), campaignID, platform, start, end, topN)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"campaign_id": campaignID,
		"platform":    platform,
		"entries":     entries,
	}, "Campaign leaderboard computed successfully")
}
