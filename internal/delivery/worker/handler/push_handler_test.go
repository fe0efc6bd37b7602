package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pulse/internal/domain/entity"
	"pulse/internal/domain/service"
	mockUC "pulse/internal/mocks/usecase"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(refreshUC usecase.RefreshUsecase) *PushHandler {
	return &PushHandler{
		verifyPushAuth: false,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		refreshUC:      refreshUC,
	}
}

func pushRequest(t *testing.T, event *service.SyncEvent, attributes map[string]string) *http.Request {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	pushMsg.Message.Attributes = attributes
	pushMsg.Message.MessageID = uuid.NewString()
	pushMsg.Subscription = "projects/local/subscriptions/sync-sub"

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestPushHandler_HandlePush_RunsRefreshPass(t *testing.T) {
	t.Parallel()

	refreshUC := mockUC.NewMockRefreshUsecase(t)
	h := newTestPushHandler(refreshUC)

	campaignID := uuid.New()

	refreshUC.EXPECT().
		RefreshCampaign(mock.Anything, campaignID, entity.PlatformTikTok).
		Return(&usecase.RefreshReport{
			CampaignID: campaignID,
			Platform:   entity.PlatformTikTok,
			Requested:  4,
			Recorded:   4,
		}, nil)

	event := &service.SyncEvent{
		Type:       service.EventTypeRefreshRequested,
		CampaignID: campaignID.String(),
		Platform:   "tiktok",
		OccurredAt: time.Now().UTC(),
	}

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(pushRequest(t, event, map[string]string{"request_id": "req-123"}), rec)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_WholeRunFailureIsRetried(t *testing.T) {
	t.Parallel()

	refreshUC := mockUC.NewMockRefreshUsecase(t)
	h := newTestPushHandler(refreshUC)

	campaignID := uuid.New()

	refreshUC.EXPECT().
		RefreshCampaign(mock.Anything, campaignID, entity.PlatformYouTube).
		Return(nil, errors.New("roster store unreachable"))

	event := &service.SyncEvent{
		Type:       service.EventTypeRefreshRequested,
		CampaignID: campaignID.String(),
		Platform:   "youtube",
		OccurredAt: time.Now().UTC(),
	}

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(pushRequest(t, event, nil), rec)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_BadEventIsNotRetried(t *testing.T) {
	t.Parallel()

	refreshUC := mockUC.NewMockRefreshUsecase(t)
	h := newTestPushHandler(refreshUC)

	// Unparseable campaign ID is a permanent failure; retrying would loop
	// forever, so the message must be acked.
	event := &service.SyncEvent{
		Type:       service.EventTypeRefreshRequested,
		CampaignID: "not-a-uuid",
		Platform:   "tiktok",
		OccurredAt: time.Now().UTC(),
	}

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(pushRequest(t, event, nil), rec)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	refreshUC.AssertNotCalled(t, "RefreshCampaign")
}

func TestPushHandler_HandlePush_ReconcileCompletedIsAcked(t *testing.T) {
	t.Parallel()

	refreshUC := mockUC.NewMockRefreshUsecase(t)
	h := newTestPushHandler(refreshUC)

	event := &service.SyncEvent{
		Type:            service.EventTypeReconcileCompleted,
		CampaignID:      uuid.NewString(),
		MappingsCreated: 5,
		OccurredAt:      time.Now().UTC(),
	}

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(pushRequest(t, event, nil), rec)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	refreshUC.AssertNotCalled(t, "RefreshCampaign")
}

func TestPushHandler_HandlePush_RejectsMalformedData(t *testing.T) {
	t.Parallel()

	refreshUC := mockUC.NewMockRefreshUsecase(t)
	h := newTestPushHandler(refreshUC)

	body := `{"message":{"data":"%%%not-base64%%%","messageId":"m1"},"subscription":"s"}`

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
