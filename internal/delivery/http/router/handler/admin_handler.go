package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	deliverycontext "pulse/internal/delivery/context"
	"pulse/internal/delivery/http/middleware"
	"pulse/internal/delivery/http/response"
	"pulse/internal/domain/entity"
	"pulse/internal/domain/service"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	ReconcileUC usecase.ReconcileUsecase
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// AdminHandler holds dependencies for operator-only maintenance endpoints
type AdminHandler struct {
	reconcileUC usecase.ReconcileUsecase
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		reconcileUC: params.ReconcileUC,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

// RequestRefreshRequest represents the request body for scheduling a
// snapshot refresh pass
type RequestRefreshRequest struct {
	Platform string `json:"platform" validate:"required"`
}

// ReconcileCampaign handles running one synchronous reconciliation pass
// for a campaign roster
func (h *AdminHandler) ReconcileCampaign(c echo.Context) error {
	campaignID, err := uuid.Parse(c.Param("campaignId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid campaign ID")
	}

	h.logOperatorAction(c, "reconcile requested", campaignID)

	report, err := h.reconcileUC.ReconcileCampaign(c.Request().Context(), campaignID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report, "Campaign reconciled successfully")
}

// RequestRefresh handles scheduling an async snapshot refresh pass. The
// actual platform calls run in the worker; this endpoint only enqueues the
// request.
func (h *AdminHandler) RequestRefresh(c echo.Context) error {
	campaignID, err := uuid.Parse(c.Param("campaignId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid campaign ID")
	}

	var req RequestRefreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	platform := entity.Platform(strings.ToLower(strings.TrimSpace(req.Platform)))
	if !platform.Valid() {
		return response.BadRequest(c, "INVALID_PLATFORM", "Unsupported platform")
	}

	h.logOperatorAction(c, "refresh requested", campaignID)

	event := &service.SyncEvent{
		RequestID:  deliverycontext.GetRequestID(c),
		Type:       service.EventTypeRefreshRequested,
		CampaignID: campaignID.String(),
		Platform:   string(platform),
		OccurredAt: time.Now().UTC(),
	}

	if err := h.publisher.PublishSyncEvent(c.Request().Context(), event); err != nil {
		h.logger.Error("Failed to publish refresh request",
			slog.String("campaign_id", campaignID.String()),
			slog.String("error", err.Error()),
		)

		return response.InternalServerError(c, "PUBLISH_FAILED", "Failed to schedule refresh")
	}

	return response.Success(c, http.StatusAccepted, map[string]string{
		"campaign_id": campaignID.String(),
		"platform":    string(platform),
		"status":      "scheduled",
	}, "Refresh scheduled successfully")
}

// logOperatorAction records who triggered a maintenance action. Admin routes
// sit behind authentication, so a missing identity only happens in tests.
func (h *AdminHandler) logOperatorAction(c echo.Context, action string, campaignID uuid.UUID) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return
	}

	attrs := []any{
		slog.String("campaign_id", campaignID.String()),
		slog.String("user_id", userID.String()),
	}
	if roles, ok := middleware.GetRoles(c); ok {
		attrs = append(attrs, slog.Any("roles", roles))
	}
	h.logger.Info(action, attrs...)
}
