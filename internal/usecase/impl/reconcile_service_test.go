package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pulse/config"
	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	domainservice "pulse/internal/domain/service"
	mockRepo "pulse/internal/mocks/repository"
	mockSvc "pulse/internal/mocks/service"
	mockUC "pulse/internal/mocks/usecase"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reconcileServiceFixtures holds all test dependencies for reconcile tests.
type reconcileServiceFixtures struct {
	service     usecase.ReconcileUsecase
	resolver    *mockUC.MockResolverUsecase
	rosterRepo  *mockRepo.MockRosterRepository
	mappingRepo *mockRepo.MockMappingRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestReconcileService(t *testing.T) reconcileServiceFixtures {
	resolver := mockUC.NewMockResolverUsecase(t)
	rosterRepo := mockRepo.NewMockRosterRepository(t)
	mappingRepo := mockRepo.NewMockMappingRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	cfg := newTestConfig()
	cfg.Reconcile = &config.ReconcileConfig{Platforms: []string{"tiktok"}}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewReconcileService(resolver, rosterRepo, mappingRepo, publisher, cfg, logger)

	return reconcileServiceFixtures{
		service:     service,
		resolver:    resolver,
		rosterRepo:  rosterRepo,
		mappingRepo: mappingRepo,
		publisher:   publisher,
	}
}

func TestReconcileService_ReconcileCampaign_CreatesMissingMappings(t *testing.T) {
	fx := createTestReconcileService(t)

	ctx := context.Background()
	campaignID := uuid.New()
	aliceID := uuid.New()

	fx.rosterRepo.EXPECT().FindCampaignByID(ctx, campaignID).Return(&entity.Campaign{ID: campaignID}, nil)
	fx.rosterRepo.EXPECT().ListParticipants(ctx, campaignID).Return([]uuid.UUID{aliceID}, nil)

	// "alice" already materialized, "alice_old" is missing.
	fx.mappingRepo.EXPECT().ListCampaignMappings(ctx, campaignID, entity.PlatformTikTok).
		Return([]*entity.HandleMapping{
			{CampaignID: campaignID, CreatorID: aliceID, Platform: entity.PlatformTikTok, Handle: "alice", Source: entity.MappingSourcePrimary},
		}, nil)
	fx.resolver.EXPECT().ResolveCreatorHandles(ctx, aliceID, entity.PlatformTikTok).
		Return(entity.NewHandleSet("alice", "alice_old"), nil)

	fx.mappingRepo.EXPECT().
		CreateMappingIfAbsent(ctx, mock.MatchedBy(func(m *entity.HandleMapping) bool {
			return m.CampaignID == campaignID &&
				m.CreatorID == aliceID &&
				m.Platform == entity.PlatformTikTok &&
				m.Handle == "alice_old" &&
				m.Source == entity.MappingSourceReconciled
		})).
		Return(true, nil)

	fx.resolver.EXPECT().
		DetectCollisions(ctx, entity.PlatformTikTok, entity.NewHandleSet("alice", "alice_old")).
		Return(nil, nil)

	fx.publisher.EXPECT().
		PublishSyncEvent(ctx, mock.MatchedBy(func(event *domainservice.SyncEvent) bool {
			return event.Type == domainservice.EventTypeReconcileCompleted &&
				event.CampaignID == campaignID.String() &&
				event.MappingsCreated == 1
		})).
		Return(nil)

	report, err := fx.service.ReconcileCampaign(ctx, campaignID)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Participants)
	assert.Equal(t, 1, report.MappingsCreated)
	assert.Empty(t, report.Failures)
}

func TestReconcileService_ReconcileCampaign_Idempotent(t *testing.T) {
	fx := createTestReconcileService(t)

	ctx := context.Background()
	campaignID := uuid.New()
	aliceID := uuid.New()

	fx.rosterRepo.EXPECT().FindCampaignByID(ctx, campaignID).Return(&entity.Campaign{ID: campaignID}, nil)
	fx.rosterRepo.EXPECT().ListParticipants(ctx, campaignID).Return([]uuid.UUID{aliceID}, nil)
	fx.mappingRepo.EXPECT().ListCampaignMappings(ctx, campaignID, entity.PlatformTikTok).
		Return([]*entity.HandleMapping{
			{CampaignID: campaignID, CreatorID: aliceID, Platform: entity.PlatformTikTok, Handle: "alice", Source: entity.MappingSourceReconciled},
		}, nil)
	fx.resolver.EXPECT().ResolveCreatorHandles(ctx, aliceID, entity.PlatformTikTok).
		Return(entity.NewHandleSet("alice"), nil)
	fx.resolver.EXPECT().DetectCollisions(ctx, entity.PlatformTikTok, entity.NewHandleSet("alice")).Return(nil, nil)
	fx.publisher.EXPECT().PublishSyncEvent(ctx, mock.AnythingOfType("*service.SyncEvent")).Return(nil)

	report, err := fx.service.ReconcileCampaign(ctx, campaignID)

	require.NoError(t, err)
	assert.Equal(t, 0, report.MappingsCreated)
	assert.Empty(t, report.Failures)
}

func TestReconcileService_ReconcileCampaign_ConcurrentInsertNotCounted(t *testing.T) {
	fx := createTestReconcileService(t)

	ctx := context.Background()
	campaignID := uuid.New()
	aliceID := uuid.New()

	fx.rosterRepo.EXPECT().FindCampaignByID(ctx, campaignID).Return(&entity.Campaign{ID: campaignID}, nil)
	fx.rosterRepo.EXPECT().ListParticipants(ctx, campaignID).Return([]uuid.UUID{aliceID}, nil)
	fx.mappingRepo.EXPECT().ListCampaignMappings(ctx, campaignID, entity.PlatformTikTok).Return(nil, nil)
	fx.resolver.EXPECT().ResolveCreatorHandles(ctx, aliceID, entity.PlatformTikTok).
		Return(entity.NewHandleSet("alice"), nil)

	// A concurrent run won the insert; the conflict is not a failure.
	fx.mappingRepo.EXPECT().
		CreateMappingIfAbsent(ctx, mock.AnythingOfType("*entity.HandleMapping")).
		Return(false, nil)

	fx.resolver.EXPECT().DetectCollisions(ctx, entity.PlatformTikTok, entity.NewHandleSet("alice")).Return(nil, nil)
	fx.publisher.EXPECT().PublishSyncEvent(ctx, mock.AnythingOfType("*service.SyncEvent")).Return(nil)

	report, err := fx.service.ReconcileCampaign(ctx, campaignID)

	require.NoError(t, err)
	assert.Equal(t, 0, report.MappingsCreated)
	assert.Empty(t, report.Failures)
}

func TestReconcileService_ReconcileCampaign_ParticipantFailureDoesNotAbortBatch(t *testing.T) {
	fx := createTestReconcileService(t)

	ctx := context.Background()
	campaignID := uuid.New()
	brokenID := uuid.New()
	bobID := uuid.New()

	fx.rosterRepo.EXPECT().FindCampaignByID(ctx, campaignID).Return(&entity.Campaign{ID: campaignID}, nil)
	fx.rosterRepo.EXPECT().ListParticipants(ctx, campaignID).Return([]uuid.UUID{brokenID, bobID}, nil)
	fx.mappingRepo.EXPECT().ListCampaignMappings(ctx, campaignID, entity.PlatformTikTok).Return(nil, nil)

	fx.resolver.EXPECT().ResolveCreatorHandles(ctx, brokenID, entity.PlatformTikTok).
		Return(nil, errors.New("profile store timeout"))
	fx.resolver.EXPECT().ResolveCreatorHandles(ctx, bobID, entity.PlatformTikTok).
		Return(entity.NewHandleSet("bob"), nil)

	fx.mappingRepo.EXPECT().
		CreateMappingIfAbsent(ctx, mock.AnythingOfType("*entity.HandleMapping")).
		Return(true, nil)

	fx.resolver.EXPECT().DetectCollisions(ctx, entity.PlatformTikTok, entity.NewHandleSet("bob")).Return(nil, nil)
	fx.publisher.EXPECT().PublishSyncEvent(ctx, mock.AnythingOfType("*service.SyncEvent")).Return(nil)

	report, err := fx.service.ReconcileCampaign(ctx, campaignID)

	require.NoError(t, err)
	assert.Equal(t, 1, report.MappingsCreated)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, brokenID, report.Failures[0].CreatorID)
	assert.Contains(t, report.Failures[0].Reason, "profile store timeout")
}

func TestReconcileService_ReconcileCampaign_CampaignNotFound(t *testing.T) {
	fx := createTestReconcileService(t)

	ctx := context.Background()
	campaignID := uuid.New()

	fx.rosterRepo.EXPECT().FindCampaignByID(ctx, campaignID).Return(nil, repository.ErrCampaignNotFound)

	report, err := fx.service.ReconcileCampaign(ctx, campaignID)

	assert.Error(t, err)
	assert.Nil(t, report)
	assert.True(t, errors.Is(err, domainerrors.ErrCampaignNotFound))
}

func TestReconcileService_ReconcileCampaign_CollisionLookupFailureKeepsReport(t *testing.T) {
	fx := createTestReconcileService(t)

	ctx := context.Background()
	campaignID := uuid.New()
	aliceID := uuid.New()

	fx.rosterRepo.EXPECT().FindCampaignByID(ctx, campaignID).Return(&entity.Campaign{ID: campaignID}, nil)
	fx.rosterRepo.EXPECT().ListParticipants(ctx, campaignID).Return([]uuid.UUID{aliceID}, nil)
	fx.mappingRepo.EXPECT().ListCampaignMappings(ctx, campaignID, entity.PlatformTikTok).Return(nil, nil)
	fx.resolver.EXPECT().ResolveCreatorHandles(ctx, aliceID, entity.PlatformTikTok).
		Return(entity.NewHandleSet("alice"), nil)
	fx.mappingRepo.EXPECT().
		CreateMappingIfAbsent(ctx, mock.AnythingOfType("*entity.HandleMapping")).
		Return(true, nil)

	// The mapping was already written; a diagnostics lookup failure must not
	// discard it.
	fx.resolver.EXPECT().DetectCollisions(ctx, entity.PlatformTikTok, entity.NewHandleSet("alice")).
		Return(nil, errors.New("profile store timeout"))
	fx.publisher.EXPECT().PublishSyncEvent(ctx, mock.AnythingOfType("*service.SyncEvent")).Return(nil)

	report, err := fx.service.ReconcileCampaign(ctx, campaignID)

	require.NoError(t, err)
	assert.Equal(t, 1, report.MappingsCreated)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, entity.PlatformTikTok, report.Failures[0].Platform)
	assert.Contains(t, report.Failures[0].Reason, "failed to detect collisions")
	assert.Empty(t, report.Diagnostics)
}

func TestReconcileService_ReconcileCampaign_MappingEnumerationFailsBatch(t *testing.T) {
	fx := createTestReconcileService(t)

	ctx := context.Background()
	campaignID := uuid.New()

	fx.rosterRepo.EXPECT().FindCampaignByID(ctx, campaignID).Return(&entity.Campaign{ID: campaignID}, nil)
	fx.rosterRepo.EXPECT().ListParticipants(ctx, campaignID).Return([]uuid.UUID{uuid.New()}, nil)
	fx.mappingRepo.EXPECT().ListCampaignMappings(ctx, campaignID, entity.PlatformTikTok).
		Return(nil, errors.New("db error"))

	report, err := fx.service.ReconcileCampaign(ctx, campaignID)

	assert.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "failed to list campaign mappings")
}

func TestReconcileService_ReconcileCampaign_PublishFailureIsAdvisory(t *testing.T) {
	fx := createTestReconcileService(t)

	ctx := context.Background()
	campaignID := uuid.New()

	fx.rosterRepo.EXPECT().FindCampaignByID(ctx, campaignID).Return(&entity.Campaign{ID: campaignID}, nil)
	fx.rosterRepo.EXPECT().ListParticipants(ctx, campaignID).Return(nil, nil)
	fx.mappingRepo.EXPECT().ListCampaignMappings(ctx, campaignID, entity.PlatformTikTok).Return(nil, nil)
	fx.resolver.EXPECT().DetectCollisions(ctx, entity.PlatformTikTok, entity.NewHandleSet()).Return(nil, nil)
	fx.publisher.EXPECT().PublishSyncEvent(ctx, mock.AnythingOfType("*service.SyncEvent")).
		Return(errors.New("broker unavailable"))

	report, err := fx.service.ReconcileCampaign(ctx, campaignID)

	require.NoError(t, err)
	assert.Equal(t, 0, report.Participants)
}

func TestReconcileService_ReconcileCampaign_CollisionsReported(t *testing.T) {
	fx := createTestReconcileService(t)

	ctx := context.Background()
	campaignID := uuid.New()
	aliceID := uuid.New()
	bobID := uuid.New()

	fx.rosterRepo.EXPECT().FindCampaignByID(ctx, campaignID).Return(&entity.Campaign{ID: campaignID}, nil)
	fx.rosterRepo.EXPECT().ListParticipants(ctx, campaignID).Return([]uuid.UUID{aliceID, bobID}, nil)
	fx.mappingRepo.EXPECT().ListCampaignMappings(ctx, campaignID, entity.PlatformTikTok).
		Return([]*entity.HandleMapping{
			{CampaignID: campaignID, CreatorID: aliceID, Platform: entity.PlatformTikTok, Handle: "shared"},
			{CampaignID: campaignID, CreatorID: bobID, Platform: entity.PlatformTikTok, Handle: "shared"},
		}, nil)
	fx.resolver.EXPECT().ResolveCreatorHandles(ctx, aliceID, entity.PlatformTikTok).
		Return(entity.NewHandleSet("shared"), nil)
	fx.resolver.EXPECT().ResolveCreatorHandles(ctx, bobID, entity.PlatformTikTok).
		Return(entity.NewHandleSet("shared"), nil)

	fx.resolver.EXPECT().DetectCollisions(ctx, entity.PlatformTikTok, entity.NewHandleSet("shared")).
		Return([]entity.Diagnostic{{
			Kind:     entity.DiagnosticHandleCollision,
			Platform: entity.PlatformTikTok,
			Handle:   "shared",
			Creators: []uuid.UUID{aliceID, bobID},
		}}, nil)
	fx.publisher.EXPECT().PublishSyncEvent(ctx, mock.AnythingOfType("*service.SyncEvent")).Return(nil)

	report, err := fx.service.ReconcileCampaign(ctx, campaignID)

	require.NoError(t, err)
	assert.Equal(t, 0, report.MappingsCreated)
	require.Len(t, report.Diagnostics, 1)
	assert.Equal(t, entity.DiagnosticHandleCollision, report.Diagnostics[0].Kind)
}
