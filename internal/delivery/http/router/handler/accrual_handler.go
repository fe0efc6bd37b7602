package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"pulse/internal/delivery/http/response"
	"pulse/internal/domain/entity"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dateLayout is the wire format for accrual range boundaries. Ranges are
// calendar dates; the start date is the baseline day.
const dateLayout = "2006-01-02"

// AccrualHandlerParams holds dependencies for AccrualHandler, injected by Fx.
type AccrualHandlerParams struct {
	fx.In

	AccrualUC usecase.AccrualUsecase
	Logger    *slog.Logger
}

// AccrualHandler holds dependencies for accrual query endpoints
type AccrualHandler struct {
	accrualUC usecase.AccrualUsecase
	logger    *slog.Logger
}

// NewAccrualHandler is the constructor for AccrualHandler
func NewAccrualHandler(params AccrualHandlerParams) *AccrualHandler {
	return &AccrualHandler{
		accrualUC: params.AccrualUC,
		logger:    params.Logger,
	}
}

// AccrueHandlesRequest represents the request body for an explicit handle
// list accrual
type AccrueHandlesRequest struct {
	Platform string   `json:"platform" validate:"required"`
	Handles  []string `json:"handles" validate:"required,min=1"`
	Start    string   `json:"start" validate:"required"`
	End      string   `json:"end" validate:"required"`
}

// GetCreatorAccrual handles computing the accrual for one creator
func (h *AccrualHandler) GetCreatorAccrual(c echo.Context) error {
	creatorID, err := uuid.Parse(c.Param("creatorId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid creator ID")
	}

	platform, ok := queryPlatform(c)
	if !ok {
		return response.BadRequest(c, "INVALID_PLATFORM", "Unsupported or missing platform")
	}

	start, end, err := queryDateRange(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE_RANGE", "Dates must use YYYY-MM-DD format with end not before start")
	}

	result, err := h.accrualUC.AccrueForCreator(c.Request().Context(), creatorID, platform, start, end)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Creator accrual computed successfully")
}

// GetCampaignAccrual handles computing the campaign accrual with the
// per-participant breakdown
func (h *AccrualHandler) GetCampaignAccrual(c echo.Context) error {
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

	result, err := h.accrualUC.AccrueForCampaign(c.Request().Context(), campaignID, platform, start, end)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Campaign accrual computed successfully")
}

// AccrueHandles handles computing the accrual for an explicit handle list
func (h *AccrualHandler) AccrueHandles(c echo.Context) error {
	var req AccrueHandlesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid accrual input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	platform := entity.Platform(strings.ToLower(strings.TrimSpace(req.Platform)))
	if !platform.Valid() {
		return response.BadRequest(c, "INVALID_PLATFORM", "Unsupported platform")
	}

	start, err := time.Parse(dateLayout, req.Start)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Dates must use YYYY-MM-DD format")
	}
	end, err := time.Parse(dateLayout, req.End)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Dates must use YYYY-MM-DD format")
	}
	if end.Before(start) {
		return response.BadRequest(c, "INVALID_DATE_RANGE", "Range end precedes range start")
	}

	result, err := h.accrualUC.AccrueForHandles(c.Request().Context(), platform, req.Handles, start, end)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Handle accrual computed successfully")
}

// queryDateRange parses the start and end calendar dates from query params.
func queryDateRange(c echo.Context) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, c.QueryParam("start"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.WithStack(err)
	}

	end, err := time.Parse(dateLayout, c.QueryParam("end"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.WithStack(err)
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.New("range end precedes range start")
	}

	return start, end, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
