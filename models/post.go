package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ContentStatus string

const (
	StatusDraft         ContentStatus = "draft"
	StatusPublished     ContentStatus = "published"
	StatusArchived      ContentStatus = "archived"
	StatusScheduled     ContentStatus = "scheduled"
	StatusPendingReview ContentStatus = "pending_review"
)

// ValidContentStatus reports whether s is one of the content_status enum values.
func ValidContentStatus(s ContentStatus) bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived, StatusScheduled, StatusPendingReview:
		return true
	}
	return false
}

// Post is the unified content record. Type-specific fields live in the
// extension tables keyed by post_id; free-form per-type data that has no
// extension column lands in OtherProperties.
//
// LegacySourceTable/LegacySourceID record which legacy per-type row a post
// was materialized from during the unification migration. The pair is unique
// so the backfill insert can never duplicate a source row.
type Post struct {
	ID                uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title             string            `json:"title" gorm:"not null"`
	Content           string            `json:"content" gorm:"type:text"`
	Status            ContentStatus     `json:"status" gorm:"type:content_status;default:'draft'"`
	AuthorID          *uuid.UUID        `json:"author_id" gorm:"type:uuid"`
	SpaceID           *uuid.UUID        `json:"space_id" gorm:"type:uuid"`
	SiteID            uuid.UUID         `json:"site_id" gorm:"type:uuid;not null;index"`
	CMSType           string            `json:"cms_type" gorm:"not null;index"`
	PublishedAt       *time.Time        `json:"published_at"`
	Locked            bool              `json:"locked" gorm:"default:false"`
	Hidden            bool              `json:"hidden" gorm:"default:false"`
	OtherProperties   datatypes.JSONMap `json:"other_properties" gorm:"type:jsonb"`
	LegacySourceTable *string           `json:"-" gorm:"uniqueIndex:idx_posts_legacy_source"`
	LegacySourceID    *uuid.UUID        `json:"-" gorm:"type:uuid;uniqueIndex:idx_posts_legacy_source"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`

	Tags []Tag `json:"tags" gorm:"many2many:post_tags;"`
}

// PostDetail is the hydrated single-post response shape.
type PostDetail struct {
	Post
	Author    *AuthorProfile `json:"author,omitempty"`
	Space     *SpaceSummary  `json:"space,omitempty"`
	Extension interface{}    `json:"extension,omitempty"`
}
