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

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindCreatorByID retrieves a single creator by their unique ID.
func (repo *profileRepository) FindCreatorByID(ctx context.Context, id uuid.UUID) (*entity.Creator, error) {
	var creatorM model.CreatorModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&creatorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCreatorNotFound
		}

		return nil, errors.Wrap(err, "failed to find creator by ID")
	}

	return toCreatorDomain(&creatorM), nil
}

// FindCreatorsByIDs retrieves creators in bulk, keyed by ID. IDs without a
// matching row are simply absent from the result.
func (repo *profileRepository) FindCreatorsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Creator, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]*entity.Creator{}, nil
	}

	var creatorModels []*model.CreatorModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&creatorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find creators by IDs")
	}

	creators := make(map[uuid.UUID]*entity.Creator, len(creatorModels))
	for _, creatorM := range creatorModels {
		creators[creatorM.ID] = toCreatorDomain(creatorM)
	}

	return creators, nil
}

// ListAliases retrieves the personal alias rows for a creator on a platform.
func (repo *profileRepository) ListAliases(ctx context.Context, creatorID uuid.UUID, platform entity.Platform) ([]*entity.HandleAlias, error) {
	var aliasModels []*model.HandleAliasModel

	if err := repo.db.WithContext(ctx).
		Where("creator_id = ? AND platform = ?", creatorID, string(platform)).
		Order("created_at ASC").
		Find(&aliasModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list aliases")
	}

	aliases := make([]*entity.HandleAlias, 0, len(aliasModels))
	for _, aliasM := range aliasModels {
		aliases = append(aliases, toAliasDomain(aliasM))
	}

	return aliases, nil
}

// ListCampaignOverrides retrieves every override row scoped to a campaign on
// a platform.
func (repo *profileRepository) ListCampaignOverrides(ctx context.Context, campaignID uuid.UUID, platform entity.Platform) ([]*entity.CampaignHandleOverride, error) {
	var overrideModels []*model.CampaignHandleOverrideModel

	if err := repo.db.WithContext(ctx).
		Where("campaign_id = ? AND platform = ?", campaignID, string(platform)).
		Order("created_at ASC").
		Find(&overrideModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list campaign overrides")
	}

	overrides := make([]*entity.CampaignHandleOverride, 0, len(overrideModels))
	for _, overrideM := range overrideModels {
		overrides = append(overrides, toOverrideDomain(overrideM))
	}

	return overrides, nil
}

// ListOverridesForCreator retrieves every override row naming a creator on a
// platform, across all campaigns. Used when resolving a creator outside any
// campaign scope.
func (repo *profileRepository) ListOverridesForCreator(ctx context.Context, creatorID uuid.UUID, platform entity.Platform) ([]*entity.CampaignHandleOverride, error) {
	var overrideModels []*model.CampaignHandleOverrideModel

	if err := repo.db.WithContext(ctx).
		Where("creator_id = ? AND platform = ?", creatorID, string(platform)).
		Order("created_at ASC").
		Find(&overrideModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list overrides for creator")
	}

	overrides := make([]*entity.CampaignHandleOverride, 0, len(overrideModels))
	for _, overrideM := range overrideModels {
		overrides = append(overrides, toOverrideDomain(overrideM))
	}

	return overrides, nil
}

// FindHandleOwners returns the distinct creator IDs claiming a normalized
// handle on a platform, across profile fields, aliases and overrides.
func (repo *profileRepository) FindHandleOwners(ctx context.Context, platform entity.Platform, handle string) ([]uuid.UUID, error) {
	canonical := entity.NormalizeHandle(handle)
	if canonical == "" {
		return nil, nil
	}

	profileColumn, err := primaryHandleColumn(platform)
	if err != nil {
		return nil, err
	}

	// Handles may be stored raw; normalize in SQL the same way
	// entity.NormalizeHandle does so comparisons agree with the domain.
	var ownerIDs []uuid.UUID
	if err := repo.db.WithContext(ctx).
		Raw(`SELECT id FROM creators WHERE `+normalizeSQL(profileColumn)+` = ?
			UNION
			SELECT creator_id FROM handle_aliases WHERE platform = ? AND `+normalizeSQL("handle")+` = ?
			UNION
			SELECT creator_id FROM campaign_handle_overrides WHERE platform = ? AND `+normalizeSQL("handle")+` = ?`,
			canonical, string(platform), canonical, string(platform), canonical).
		Scan(&ownerIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find handle owners")
	}

	return ownerIDs, nil
}

// normalizeSQL mirrors entity.NormalizeHandle for a SQL column expression.
func normalizeSQL(column string) string {
	return "lower(trim(leading '@' from trim(" + column + ")))"
}

func primaryHandleColumn(platform entity.Platform) (string, error) {
	switch platform {
	case entity.PlatformTikTok:
		return "tiktok_handle", nil
	case entity.PlatformInstagram:
		return "instagram_handle", nil
	case entity.PlatformYouTube:
		return "youtube_handle", nil
	}

	return "", errors.Errorf("unknown platform: %s", platform)
}

// toCreatorDomain maps the persistence model back to a pure domain entity.
func toCreatorDomain(creatorM *model.CreatorModel) *entity.Creator {
	return &entity.Creator{
		ID:              creatorM.ID,
		Email:           creatorM.Email,
		Name:            creatorM.Name,
		TikTokHandle:    creatorM.TikTokHandle,
		InstagramHandle: creatorM.InstagramHandle,
		YouTubeHandle:   creatorM.YouTubeHandle,
		CreatedAt:       creatorM.CreatedAt,
		UpdatedAt:       creatorM.UpdatedAt,
	}
}

func toAliasDomain(aliasM *model.HandleAliasModel) *entity.HandleAlias {
	return &entity.HandleAlias{
		ID:        aliasM.ID,
		CreatorID: aliasM.CreatorID,
		Platform:  entity.Platform(aliasM.Platform),
		Handle:    aliasM.Handle,
		CreatedAt: aliasM.CreatedAt,
	}
}

func toOverrideDomain(overrideM *model.CampaignHandleOverrideModel) *entity.CampaignHandleOverride {
	return &entity.CampaignHandleOverride{
		ID:         overrideM.ID,
		CampaignID: overrideM.CampaignID,
		CreatorID:  overrideM.CreatorID,
		Platform:   entity.Platform(overrideM.Platform),
		Handle:     overrideM.Handle,
		CreatedAt:  overrideM.CreatedAt,
	}
}
