package model

import (
	"time"

	"github.com/google/uuid"
)

// CreatorModel mirrors the 'creators' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type CreatorModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email           string    `gorm:"type:varchar(255);unique;not null"`
	Name            string    `gorm:"type:varchar(100)"`
	TikTokHandle    string    `gorm:"type:varchar(100);column:tiktok_handle"`
	InstagramHandle string    `gorm:"type:varchar(100)"`
	YouTubeHandle   string    `gorm:"type:varchar(100);column:youtube_handle"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Aliases []HandleAliasModel `gorm:"foreignKey:CreatorID"`
}

// TableName explicitly sets the table name for GORM.
func (CreatorModel) TableName() string {
	return "creators"
}

// HandleAliasModel mirrors the 'handle_aliases' table. One row per extra
// handle a creator is known by on a platform, independent of any campaign.
type HandleAliasModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CreatorID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_aliases_natural"`
	Platform  string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_aliases_natural"`
	Handle    string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_aliases_natural"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (HandleAliasModel) TableName() string {
	return "handle_aliases"
}
