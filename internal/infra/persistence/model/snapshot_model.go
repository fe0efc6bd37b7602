package model

import (
	"time"

	"github.com/google/uuid"
)

// MetricSnapshotModel mirrors the 'metric_snapshots' table. Rows are
// append-only captures of cumulative counters; corrections arrive as new
// captures, never as updates.
type MetricSnapshotModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ItemKey    string    `gorm:"type:varchar(255);not null;index"`
	Handle     string    `gorm:"type:varchar(100);not null;index:idx_snapshots_window,priority:2"`
	Platform   string    `gorm:"type:varchar(20);not null;index:idx_snapshots_window,priority:1"`
	Views      int64     `gorm:"not null;default:0"`
	Likes      int64     `gorm:"not null;default:0"`
	Comments   int64     `gorm:"not null;default:0"`
	Shares     int64     `gorm:"not null;default:0"`
	Saves      int64     `gorm:"not null;default:0"`
	CapturedAt time.Time `gorm:"not null;index:idx_snapshots_window,priority:3"`
}

// TableName explicitly sets the table name for GORM.
func (MetricSnapshotModel) TableName() string {
	return "metric_snapshots"
}
