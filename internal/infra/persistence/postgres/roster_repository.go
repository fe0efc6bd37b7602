// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"pulse/internal/domain/entity"
	"pulse/internal/domain/repository"
	"pulse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// rosterRepository implements the repository.RosterRepository interface.
type rosterRepository struct {
	db *gorm.DB
}

// NewRosterRepository is the constructor for rosterRepository.
func NewRosterRepository(db *gorm.DB) repository.RosterRepository {
	return &rosterRepository{
		db: db,
	}
}

// FindCampaignByID retrieves a single campaign by its unique ID.
func (repo *rosterRepository) FindCampaignByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error) {
	var campaignM model.CampaignModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&campaignM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCampaignNotFound
		}

		return nil, errors.Wrap(err, "failed to find campaign by ID")
	}

	return toCampaignDomain(&campaignM), nil
}

// ListParticipants retrieves the creator IDs currently enrolled in a
// campaign, in enrollment order.
func (repo *rosterRepository) ListParticipants(ctx context.Context, campaignID uuid.UUID) ([]uuid.UUID, error) {
	var participantModels []*model.CampaignParticipantModel

	if err := repo.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("joined_at ASC").
		Find(&participantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list participants")
	}

	creatorIDs := make([]uuid.UUID, 0, len(participantModels))
	for _, participantM := range participantModels {
		creatorIDs = append(creatorIDs, participantM.CreatorID)
	}

	return creatorIDs, nil
}

// toCampaignDomain maps the persistence model back to a pure domain entity.
func toCampaignDomain(campaignM *model.CampaignModel) *entity.Campaign {
	return &entity.Campaign{
		ID:        campaignM.ID,
		Name:      campaignM.Name,
		StartsAt:  campaignM.StartsAt,
		EndsAt:    campaignM.EndsAt,
		CreatedAt: campaignM.CreatedAt,
		UpdatedAt: campaignM.UpdatedAt,
	}
}
