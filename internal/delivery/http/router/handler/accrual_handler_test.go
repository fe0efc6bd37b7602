package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pulse/internal/delivery/http/validator"
	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	mockUC "pulse/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func TestAccrualHandler_GetCreatorAccrual_ReturnsResult(t *testing.T) {
	t.Parallel()

	accrualUC := mockUC.NewMockAccrualUsecase(t)
	h := &AccrualHandler{accrualUC: accrualUC, logger: newTestLogger()}

	creatorID := uuid.New()
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	accrualUC.EXPECT().
		AccrueForCreator(mock.Anything, creatorID, entity.PlatformTikTok, start, end).
		Return(&entity.AccrualResult{
			Platform: entity.PlatformTikTok,
			Totals:   entity.MetricTotals{Views: 50, Likes: 5},
		}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/creators/"+creatorID.String()+"/accrual?platform=tiktok&start=2024-03-01&end=2024-03-05", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("creatorId")
	c.SetParamValues(creatorID.String())

	require.NoError(t, h.GetCreatorAccrual(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"views":50`)
}

func TestAccrualHandler_GetCreatorAccrual_UnknownCreatorIs404(t *testing.T) {
	t.Parallel()

	accrualUC := mockUC.NewMockAccrualUsecase(t)
	h := &AccrualHandler{accrualUC: accrualUC, logger: newTestLogger()}

	creatorID := uuid.New()
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	accrualUC.EXPECT().
		AccrueForCreator(mock.Anything, creatorID, entity.PlatformTikTok, start, end).
		Return(nil, errors.Wrap(domainerrors.ErrCreatorNotFound, "creator not found"))

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/creators/"+creatorID.String()+"/accrual?platform=tiktok&start=2024-03-01&end=2024-03-05", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("creatorId")
	c.SetParamValues(creatorID.String())

	require.NoError(t, h.GetCreatorAccrual(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "CREATOR_NOT_FOUND")
}

func TestAccrualHandler_GetCampaignAccrual_UnknownCampaignIs404(t *testing.T) {
	t.Parallel()

	accrualUC := mockUC.NewMockAccrualUsecase(t)
	h := &AccrualHandler{accrualUC: accrualUC, logger: newTestLogger()}

	campaignID := uuid.New()
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	accrualUC.EXPECT().
		AccrueForCampaign(mock.Anything, campaignID, entity.PlatformTikTok, start, end).
		Return(nil, errors.Wrap(domainerrors.ErrCampaignNotFound, "campaign not found"))

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/campaigns/"+campaignID.String()+"/accrual?platform=tiktok&start=2024-03-01&end=2024-03-05", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("campaignId")
	c.SetParamValues(campaignID.String())

	require.NoError(t, h.GetCampaignAccrual(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "CAMPAIGN_NOT_FOUND")
}

func TestAccrualHandler_GetCreatorAccrual_RejectsUnknownPlatform(t *testing.T) {
	t.Parallel()

	accrualUC := mockUC.NewMockAccrualUsecase(t)
	h := &AccrualHandler{accrualUC: accrualUC, logger: newTestLogger()}

	creatorID := uuid.New()

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/creators/"+creatorID.String()+"/accrual?platform=myspace&start=2024-03-01&end=2024-03-05", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("creatorId")
	c.SetParamValues(creatorID.String())

	require.NoError(t, h.GetCreatorAccrual(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	accrualUC.AssertNotCalled(t, "AccrueForCreator")
}

func TestAccrualHandler_GetCreatorAccrual_RejectsReversedRange(t *testing.T) {
	t.Parallel()

	accrualUC := mockUC.NewMockAccrualUsecase(t)
	h := &AccrualHandler{accrualUC: accrualUC, logger: newTestLogger()}

	creatorID := uuid.New()

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/creators/"+creatorID.String()+"/accrual?platform=tiktok&start=2024-03-05&end=2024-03-01", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("creatorId")
	c.SetParamValues(creatorID.String())

	require.NoError(t, h.GetCreatorAccrual(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	accrualUC.AssertNotCalled(t, "AccrueForCreator")
}

func TestAccrualHandler_GetCampaignAccrual_ReturnsBreakdown(t *testing.T) {
	t.Parallel()

	accrualUC := mockUC.NewMockAccrualUsecase(t)
	h := &AccrualHandler{accrualUC: accrualUC, logger: newTestLogger()}

	campaignID := uuid.New()
	creatorID := uuid.New()
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	accrualUC.EXPECT().
		AccrueForCampaign(mock.Anything, campaignID, entity.PlatformYouTube, start, end).
		Return(&entity.CampaignAccrualResult{
			CampaignID: campaignID,
			Result:     entity.AccrualResult{Platform: entity.PlatformYouTube, Totals: entity.MetricTotals{Views: 120}},
			Creators: []entity.CreatorAccrual{
				{CreatorID: creatorID, Handles: []string{"alice"}, Totals: entity.MetricTotals{Views: 120}},
			},
		}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/campaigns/"+campaignID.String()+"/accrual?platform=youtube&start=2024-03-01&end=2024-03-05", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("campaignId")
	c.SetParamValues(campaignID.String())

	require.NoError(t, h.GetCampaignAccrual(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), creatorID.String())
}

func TestAccrualHandler_AccrueHandles_ComputesForList(t *testing.T) {
	t.Parallel()

	accrualUC := mockUC.NewMockAccrualUsecase(t)
	h := &AccrualHandler{accrualUC: accrualUC, logger: newTestLogger()}

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	accrualUC.EXPECT().
		AccrueForHandles(mock.Anything, entity.PlatformInstagram, []string{"@Alice", "bob"}, start, end).
		Return(&entity.AccrualResult{Platform: entity.PlatformInstagram}, nil)

	body := `{"platform":"instagram","handles":["@Alice","bob"],"start":"2024-03-01","end":"2024-03-05"}`

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/accruals/handles", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.AccrueHandles(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccrualHandler_AccrueHandles_RequiresHandles(t *testing.T) {
	t.Parallel()

	accrualUC := mockUC.NewMockAccrualUsecase(t)
	h := &AccrualHandler{accrualUC: accrualUC, logger: newTestLogger()}

	body := `{"platform":"instagram","handles":[],"start":"2024-03-01","end":"2024-03-05"}`

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/accruals/handles", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.AccrueHandles(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	accrualUC.AssertNotCalled(t, "AccrueForHandles")
}
