// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"pulse/internal/domain/entity"
	"pulse/internal/errors"
)

// Domain-specific errors for snapshot persistence.
var (
	// ErrSnapshotNotFound is returned when no snapshot matches a point query.
	ErrSnapshotNotFound = errors.New("snapshot not found")
)

// SnapshotRepository is the read surface over the append-only counter
// captures. Accrual only reads; RecordSnapshot exists for the refresh batch,
// which appends new captures and never updates or deletes existing rows.
type SnapshotRepository interface {
	// SnapshotsInWindow retrieves all captures for the given normalized
	// handles on one platform within [from, to], ordered by capture time
	// ascending. Callers widen the window backward themselves when they need
	// a baseline before the nominal range start.
	SnapshotsInWindow(ctx context.Context, platform entity.Platform, handles []string, from, to time.Time) ([]*entity.MetricSnapshot, error)

	// LatestAtOrBefore retrieves the most recent capture for one tracked item
	// at or before the given instant. Returns ErrSnapshotNotFound when the
	// item has no capture that early.
	LatestAtOrBefore(ctx context.Context, platform entity.Platform, itemKey string, at time.Time) (*entity.MetricSnapshot, error)

	// RecordSnapshot appends a new capture row.
	RecordSnapshot(ctx context.Context, snapshot *entity.MetricSnapshot) error
}
