// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pulse/internal/domain/entity"
	"pulse/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for roster persistence.
var (
	// ErrCampaignNotFound is returned when a campaign is not found.
	ErrCampaignNotFound = errors.New("campaign not found")
)

// RosterRepository reads campaign rosters.
type RosterRepository interface {
	// FindCampaignByID retrieves a campaign by its unique ID.
	FindCampaignByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error)

	// ListParticipants retrieves the current participant creator IDs for a campaign.
	ListParticipants(ctx context.Context, campaignID uuid.UUID) ([]uuid.UUID, error)
}
