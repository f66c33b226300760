package models

import (
	"time"

	"github.com/google/uuid"
)

type SpaceVisibility string

const (
	SpacePublic  SpaceVisibility = "public"
	SpacePrivate SpaceVisibility = "private"
	SpacePaid    SpaceVisibility = "paid"
)

type Space struct {
	ID          uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string          `json:"name" gorm:"not null"`
	Slug        string          `json:"slug" gorm:"not null;uniqueIndex:idx_spaces_site_slug"`
	Description string          `json:"description"`
	CreatorID   uuid.UUID       `json:"creator_id" gorm:"type:uuid;not null"`
	SiteID      uuid.UUID       `json:"site_id" gorm:"type:uuid;not null;uniqueIndex:idx_spaces_site_slug"`
	Site        *Site           `json:"-" gorm:"foreignKey:SiteID;constraint:OnDelete:CASCADE"`
	Visibility  SpaceVisibility `json:"visibility" gorm:"type:varchar(20);default:'public'"`
	CMSType     string          `json:"cms_type" gorm:"not null"`
	Hidden      bool            `json:"hidden" gorm:"default:false"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// SpaceSummary is the projection of a space embedded in post responses.
type SpaceSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
