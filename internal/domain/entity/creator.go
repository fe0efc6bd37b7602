// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Creator is a tracked person (employee or external creator) whose engagement
// is measured across platforms. Creators are provisioned externally; the
// engine only reads them and derives handle sets from them.
type Creator struct {
	ID              uuid.UUID // The Global Unique Identifier (GUID) for the creator.
	Email           string    // The creator's contact email, used as a login identifier by the outer application.
	Name            string    // The creator's display name.
	TikTokHandle    string    // Primary TikTok handle from the profile. May be raw; normalize before use.
	InstagramHandle string    // Primary Instagram handle from the profile. May be raw; normalize before use.
	YouTubeHandle   string    // Primary YouTube channel handle from the profile. May be raw; normalize before use.
	CreatedAt       time.Time // Timestamp of when this creator was provisioned.
	UpdatedAt       time.Time // Timestamp of the last modification to this creator's data.
}

// PrimaryHandle returns the profile handle for the given platform, normalized.
// Returns "" when the profile has no handle for that platform.
func (c *Creator) PrimaryHandle(platform Platform) string {
	switch platform {
	case PlatformTikTok:
		return NormalizeHandle(c.TikTokHandle)
	case PlatformInstagram:
		return NormalizeHandle(c.InstagramHandle)
	case PlatformYouTube:
		return NormalizeHandle(c.YouTubeHandle)
	}

	return ""
}

// HandleAlias is a personal alias row binding an extra handle to a creator on
// one platform, independent of any campaign.
type HandleAlias struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the alias row.
	CreatorID uuid.UUID // The creator this alias belongs to.
	Platform  Platform  // The platform the handle lives on.
	Handle    string    // The alias handle. May be raw; normalize before use.
	CreatedAt time.Time // Timestamp of when the alias was recorded.
}
