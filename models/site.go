package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type SiteStatus string

const (
	SiteActive   SiteStatus = "active"
	SiteInactive SiteStatus = "inactive"
	SitePending  SiteStatus = "pending"
)

// Site is a tenant community. ContentTypes and SpaceIDs are denormalized
// caches of child rows; they are rebuildable from the spaces table and must
// never be treated as the source of truth.
type Site struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string         `json:"name" gorm:"not null"`
	Subdomain    *string        `json:"subdomain" gorm:"uniqueIndex"`
	OwnerID      uuid.UUID      `json:"owner_id" gorm:"type:uuid;not null"`
	Status       SiteStatus     `json:"status" gorm:"type:varchar(20);default:'active'"`
	LogoURL      string         `json:"logo_url"`
	BrandColor   string         `json:"brand_color"`
	ContentTypes pq.StringArray `json:"content_types" gorm:"type:text[]"`
	SpaceIDs     pq.StringArray `json:"space_ids" gorm:"type:text[]"`
	Plan         string         `json:"plan" gorm:"default:'free'"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
