// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// snapshotRepository implements the repository.SnapshotRepository interface.
type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository is the constructor for snapshotRepository.
func NewSnapshotRepository(db *gorm.DB) repository.SnapshotRepository {
	return &snapshotRepository{
		db: db,
	}
}

// SnapshotsInWindow retrieves every capture for the given handles inside
// [from, to], ordered by capture time ascending. The caller widens from
// backward when it needs baseline candidates.
func (repo *snapshotRepository) SnapshotsInWindow(ctx context.Context, platform entity.Platform, handles []string, from, to time.Time) ([]*entity.MetricSnapshot, error) {
	if len(handles) == 0 {
		return nil, nil
	}

	var snapshotModels []*model.MetricSnapshotModel
	if err := repo.db.WithContext(ctx).
		Where("platform = ? AND handle IN ? AND captured_at >= ? AND captured_at <= ?",
			string(platform), handles, from, to).
		Order("captured_at ASC").
		Find(&snapshotModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query snapshots in window")
	}

	snapshots := make([]*entity.MetricSnapshot, 0, len(snapshotModels))
	for _, snapshotM := range snapshotModels {
		snapshots = append(snapshots, toSnapshotDomain(snapshotM))
	}

	return snapshots, nil
}

// LatestAtOrBefore retrieves the most recent capture for one item at or
// before the given instant.
func (repo *snapshotRepository) LatestAtOrBefore(ctx context.Context, platform entity.Platform, itemKey string, at time.Time) (*entity.MetricSnapshot, error) {
	var snapshotM model.MetricSnapshotModel

	if err := repo.db.WithContext(ctx).
		Where("platform = ? AND item_key = ? AND captured_at <= ?", string(platform), itemKey, at).
		Order("captured_at DESC").
		First(&snapshotM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSnapshotNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest snapshot")
	}

	return toSnapshotDomain(&snapshotM), nil
}

// RecordSnapshot appends a new capture row. Captures are immutable; a
// correction is a new row with a later capture time.
func (repo *snapshotRepository) RecordSnapshot(ctx context.Context, snapshot *entity.MetricSnapshot) error {
	snapshotM := fromSnapshotDomain(snapshot)

	if err := repo.db.WithContext(ctx).Create(snapshotM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required snapshot fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record snapshot")
	}

	snapshot.ID = snapshotM.ID

	return nil
}

func toSnapshotDomain(snapshotM *model.MetricSnapshotModel) *entity.MetricSnapshot {
	return &entity.MetricSnapshot{
		ID:       snapshotM.ID,
		ItemKey:  snapshotM.ItemKey,
		Handle:   snapshotM.Handle,
		Platform: entity.Platform(snapshotM.Platform),
		Counters: entity.MetricTotals{
			Views:    snapshotM.Views,
			Likes:    snapshotM.Likes,
			Comments: snapshotM.Comments,
			Shares:   snapshotM.Shares,
			Saves:    snapshotM.Saves,
		},
		CapturedAt: snapshotM.CapturedAt,
	}
}

func fromSnapshotDomain(snapshot *entity.MetricSnapshot) *model.MetricSnapshotModel {
	return &model.MetricSnapshotModel{
		ID:         snapshot.ID,
		ItemKey:    snapshot.ItemKey,
		Handle:     entity.NormalizeHandle(snapshot.Handle),
		Platform:   string(snapshot.Platform),
		Views:      snapshot.Counters.Views,
		Likes:      snapshot.Counters.Likes,
		Comments:   snapshot.Counters.Comments,
		Shares:     snapshot.Counters.Shares,
		Saves:      snapshot.Counters.Saves,
		CapturedAt: snapshot.CapturedAt,
	}
}
