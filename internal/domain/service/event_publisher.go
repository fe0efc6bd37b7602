package service

import (
	"context"
	"time"
)

// Event types published by the engine.
const (
	EventTypeReconcileCompleted = "reconcile.completed"
	EventTypeRefreshRequested   = "refresh.requested"
)

// SyncEvent represents a reconciliation or refresh event for async processing
// by the worker.
type SyncEvent struct {
	RequestID       string    `json:"request_id,omitempty"` // For distributed tracing
	Type            string    `json:"type"`
	CampaignID      string    `json:"campaign_id"`
	Platform        string    `json:"platform,omitempty"`
	MappingsCreated int       `json:"mappings_created,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSyncEvent publishes a sync event for async processing
	PublishSyncEvent(ctx context.Context, event *SyncEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
