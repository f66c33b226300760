package models

import (
	"time"

	"github.com/google/uuid"
)

// Tag is scoped to a site; the same name may exist under different sites.
type Tag struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SiteID    uuid.UUID `json:"site_id" gorm:"type:uuid;not null;uniqueIndex:idx_tags_site_name"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex:idx_tags_site_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PostTag struct {
	PostID    uuid.UUID `json:"post_id" gorm:"type:uuid;primaryKey"`
	Post      *Post     `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	TagID     uuid.UUID `json:"tag_id" gorm:"type:uuid;primaryKey"`
	Tag       *Tag      `json:"-" gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
}

func (PostTag) TableName() string { return "post_tags" }

// ContentTag is the retired polymorphic tag link (content_id + content_type
// string dispatch). It exists only as the source side of the tag migration.
type ContentTag struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ContentID   uuid.UUID `gorm:"type:uuid;not null"`
	ContentType string    `gorm:"not null"`
	TagID       uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt   time.Time
}

func (ContentTag) TableName() string { return "content_tags" }
