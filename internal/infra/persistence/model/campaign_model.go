package model

import (
	"time"

	"github.com/google/uuid"
)

// CampaignModel mirrors the 'campaigns' table.
type CampaignModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	StartsAt  *time.Time
	EndsAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	Participants []CampaignParticipantModel `gorm:"foreignKey:CampaignID"`
}

// TableName explicitly sets the table name for GORM.
func (CampaignModel) TableName() string {
	return "campaigns"
}

// CampaignParticipantModel mirrors the 'campaign_participants' join table.
type CampaignParticipantModel struct {
	CampaignID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatorID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	JoinedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CampaignParticipantModel) TableName() string {
	return "campaign_participants"
}

// CampaignHandleOverrideModel mirrors the 'campaign_handle_overrides' table.
// Overrides bind a campaign-specific handle to a participant without touching
// their profile or aliases.
type CampaignHandleOverrideModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CampaignID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_overrides_natural"`
	CreatorID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_overrides_natural"`
	Platform   string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_overrides_natural"`
	Handle     string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_overrides_natural"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CampaignHandleOverrideModel) TableName() string {
	return "campaign_handle_overrides"
}
