package model

import (
	"time"

	"github.com/google/uuid"
)

// HandleMappingModel mirrors the 'handle_mappings' table. The natural key
// (campaign, creator, platform, handle) carries a unique index so concurrent
// reconciliation runs can insert with ON CONFLICT DO NOTHING instead of
// racing on a read-then-write.
type HandleMappingModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CampaignID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_mappings_natural"`
	CreatorID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_mappings_natural"`
	Platform   string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_mappings_natural"`
	Handle     string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_mappings_natural"`
	Source     string    `gorm:"type:varchar(20);not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (HandleMappingModel) TableName() string {
	return "handle_mappings"
}
