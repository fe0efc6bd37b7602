package handler

import (
	"log/slog"
	"net/http"

	"pulse/internal/delivery/http/response"
	"pulse/internal/domain/entity"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ResolverHandlerParams holds dependencies for ResolverHandler, injected by Fx.
type ResolverHandlerParams struct {
	fx.In

	ResolverUC usecase.ResolverUsecase
	Logger     *slog.Logger
}

// ResolverHandler holds dependencies for handle resolution endpoints
type ResolverHandler struct {
	resolverUC usecase.ResolverUsecase
	logger     *slog.Logger
}

// NewResolverHandler is the constructor for ResolverHandler
func NewResolverHandler(params ResolverHandlerParams) *ResolverHandler {
	return &ResolverHandler{
		resolverUC: params.ResolverUC,
		logger:     params.Logger,
	}
}

// HandleSetResponse represents a resolved handle set
type HandleSetResponse struct {
	Platform entity.Platform `json:"platform"`
	Handles  []string        `json:"handles"`
}

// GetCreatorHandles handles resolving the full handle set for one creator
func (h *ResolverHandler) GetCreatorHandles(c echo.Context) error {
	creatorID, err := uuid.Parse(c.Param("creatorId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid creator ID")
	}

	platform, ok := queryPlatform(c)
	if !ok {
		return response.BadRequest(c, "INVALID_PLATFORM", "Unsupported or missing platform")
	}

	handles, err := h.resolverUC.ResolveCreatorHandles(c.Request().Context(), creatorID, platform)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, HandleSetResponse{
		Platform: platform,
		Handles:  handles.Values(),
	}, "Creator handles resolved successfully")
}

// GetCampaignHandles handles resolving the aggregate handle set for a campaign
func (h *ResolverHandler) GetCampaignHandles(c echo.Context) error {
	campaignID, err := uuid.Parse(c.Param("campaignId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid campaign ID")
	}

	platform, ok := queryPlatform(c)
	if !ok {
		return response.BadRequest(c, "INVALID_PLATFORM", "Unsupported or missing platform")
	}

	handles, err := h.resolverUC.ResolveCampaignHandles(c.Request().Context(), campaignID, platform)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, HandleSetResponse{
		Platform: platform,
		Handles:  handles.Values(),
	}, "Campaign handles resolved successfully")
}

// GetCampaignCollisions handles reporting handles claimed by more than one creator
func (h *ResolverHandler) GetCampaignCollisions(c echo.Context) error {
	campaignID, err := uuid.Parse(c.Param("campaignId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid campaign ID")
	}

	platform, ok := queryPlatform(c)
	if !ok {
		return response.BadRequest(c, "INVALID_PLATFORM", "Unsupported or missing platform")
	}

	ctx := c.Request().Context()
	handles, err := h.resolverUC.ResolveCampaignHandles(ctx, campaignID, platform)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	diagnostics, err := h.resolverUC.DetectCollisions(ctx, platform, handles)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"platform":    platform,
		"collisions":  diagnostics,
		"handleCount": handles.Len(),
	}, "Campaign collisions detected successfully")
}

// queryPlatform parses and validates the platform query parameter.
func queryPlatform(c echo.Context) (entity.Platform, bool) {
	platform := entity.Platform(c.QueryParam("platform"))

	return platform, platform.Valid()
}
