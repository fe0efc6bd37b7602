// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// mappingRepository implements the repository.MappingRepository interface.
type mappingRepository struct {
	db *gorm.DB
}

// NewMappingRepository is the constructor for mappingRepository.
func NewMappingRepository(db *gorm.DB) repository.MappingRepository {
	return &mappingRepository{
		db: db,
	}
}

// ListCampaignMappings retrieves every materialized mapping row for a
// campaign on a platform.
func (repo *mappingRepository) ListCampaignMappings(ctx context.Context, campaignID uuid.UUID, platform entity.Platform) ([]*entity.HandleMapping, error) {
	var mappingModels []*model.HandleMappingModel

	if err := repo.db.WithContext(ctx).
		Where("campaign_id = ? AND platform = ?", campaignID, string(platform)).
		Order("created_at ASC").
		Find(&mappingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list campaign mappings")
	}

	return toMappingDomains(mappingModels), nil
}

// CreateMappingIfAbsent inserts a mapping row unless its natural key already
// exists. Returns true when a row was written. A conflict with a concurrent
// insert is not an error; the desired end state already holds.
func (repo *mappingRepository) CreateMappingIfAbsent(ctx context.Context, mapping *entity.HandleMapping) (bool, error) {
	mappingM := fromMappingDomain(mapping)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "campaign_id"},
				{Name: "creator_id"},
				{Name: "platform"},
				{Name: "handle"},
			},
			DoNothing: true,
		}).
		Create(mappingM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return false, domainerrors.ErrCreatorNotFound.WrapMessage("mapping references an unknown campaign or creator")
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create mapping")
	}

	return result.RowsAffected > 0, nil
}

func toMappingDomains(mappingModels []*model.HandleMappingModel) []*entity.HandleMapping {
	mappings := make([]*entity.HandleMapping, 0, len(mappingModels))
	for _, mappingM := range mappingModels {
		mappings = append(mappings, &entity.HandleMapping{
			ID:         mappingM.ID,
			CampaignID: mappingM.CampaignID,
			CreatorID:  mappingM.CreatorID,
			Platform:   entity.Platform(mappingM.Platform),
			Handle:     mappingM.Handle,
			Source:     entity.MappingSource(mappingM.Source),
			CreatedAt:  mappingM.CreatedAt,
		})
	}

	return mappings
}

func fromMappingDomain(mapping *entity.HandleMapping) *model.HandleMappingModel {
	return &model.HandleMappingModel{
		ID:         mapping.ID,
		CampaignID: mapping.CampaignID,
		CreatorID:  mapping.CreatorID,
		Platform:   string(mapping.Platform),
		Handle:     entity.NormalizeHandle(mapping.Handle),
		Source:     string(mapping.Source),
		CreatedAt:  mapping.CreatedAt,
	}
}
