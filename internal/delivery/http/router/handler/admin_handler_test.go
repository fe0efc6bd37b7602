package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pulse/internal/domain/service"
	mockSvc "pulse/internal/mocks/service"
	mockUC "pulse/internal/mocks/usecase"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminHandler_ReconcileCampaign_ReturnsReport(t *testing.T) {
	t.Parallel()

	reconcileUC := mockUC.NewMockReconcileUsecase(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	h := &AdminHandler{reconcileUC: reconcileUC, publisher: publisher, logger: newTestLogger()}

	campaignID := uuid.New()

	reconcileUC.EXPECT().
		ReconcileCampaign(mock.Anything, campaignID).
		Return(&usecase.ReconcileReport{
			CampaignID:      campaignID,
			Participants:    3,
			MappingsCreated: 2,
		}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/admin/campaigns/"+campaignID.String()+"/reconcile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("campaignId")
	c.SetParamValues(campaignID.String())

	require.NoError(t, h.ReconcileCampaign(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"mappings_created":2`)
}

func TestAdminHandler_ReconcileCampaign_LogsOperatorIdentity(t *testing.T) {
	t.Parallel()

	reconcileUC := mockUC.NewMockReconcileUsecase(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	var logBuf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logBuf, nil))
	h := &AdminHandler{reconcileUC: reconcileUC, publisher: publisher, logger: logger}

	campaignID := uuid.New()
	operatorID := uuid.New()

	reconcileUC.EXPECT().
		ReconcileCampaign(mock.Anything, campaignID).
		Return(&usecase.ReconcileReport{CampaignID: campaignID}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/admin/campaigns/"+campaignID.String()+"/reconcile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("campaignId")
	c.SetParamValues(campaignID.String())
	c.Set("userID", operatorID)
	c.Set("roles", []string{"operator"})

	require.NoError(t, h.ReconcileCampaign(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, logBuf.String(), operatorID.String())
	assert.Contains(t, logBuf.String(), "operator")
}

func TestAdminHandler_ReconcileCampaign_RejectsBadID(t *testing.T) {
	t.Parallel()

	reconcileUC := mockUC.NewMockReconcileUsecase(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	h := &AdminHandler{reconcileUC: reconcileUC, publisher: publisher, logger: newTestLogger()}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/admin/campaigns/not-a-uuid/reconcile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("campaignId")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.ReconcileCampaign(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	reconcileUC.AssertNotCalled(t, "ReconcileCampaign")
}

func TestAdminHandler_RequestRefresh_PublishesEvent(t *testing.T) {
	t.Parallel()

	reconcileUC := mockUC.NewMockReconcileUsecase(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	h := &AdminHandler{reconcileUC: reconcileUC, publisher: publisher, logger: newTestLogger()}

	campaignID := uuid.New()

	publisher.EXPECT().
		PublishSyncEvent(mock.Anything, mock.MatchedBy(func(event *service.SyncEvent) bool {
			return event.Type == service.EventTypeRefreshRequested &&
				event.CampaignID == campaignID.String() &&
				event.Platform == "tiktok"
		})).
		Return(nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/admin/campaigns/"+campaignID.String()+"/refresh", strings.NewReader(`{"platform":"TikTok"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("campaignId")
	c.SetParamValues(campaignID.String())

	require.NoError(t, h.RequestRefresh(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestAdminHandler_RequestRefresh_PublishFailureIsReported(t *testing.T) {
	t.Parallel()

	reconcileUC := mockUC.NewMockReconcileUsecase(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	h := &AdminHandler{reconcileUC: reconcileUC, publisher: publisher, logger: newTestLogger()}

	campaignID := uuid.New()

	publisher.EXPECT().
		PublishSyncEvent(mock.Anything, mock.Anything).
		Return(errors.New("broker unavailable"))

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/admin/campaigns/"+campaignID.String()+"/refresh", strings.NewReader(`{"platform":"tiktok"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("campaignId")
	c.SetParamValues(campaignID.String())

	require.NoError(t, h.RequestRefresh(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAdminHandler_RequestRefresh_RejectsUnknownPlatform(t *testing.T) {
	t.Parallel()

	reconcileUC := mockUC.NewMockReconcileUsecase(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	h := &AdminHandler{reconcileUC: reconcileUC, publisher: publisher, logger: newTestLogger()}

	campaignID := uuid.New()

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/admin/campaigns/"+campaignID.String()+"/refresh", strings.NewReader(`{"platform":"myspace"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("campaignId")
	c.SetParamValues(campaignID.String())

	require.NoError(t, h.RequestRefresh(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	publisher.AssertNotCalled(t, "PublishSyncEvent")
}
