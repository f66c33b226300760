package models

import "github.com/google/uuid"

type RegisterRequest struct {
	Username string   `json:"username" binding:"required,min=3,max=50"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	FullName string   `json:"full_name"`
	Role     UserRole `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreatePostRequest struct {
	Title           string                 `json:"title" binding:"required,min=1,max=255"`
	Content         string                 `json:"content" binding:"required"`
	Status          ContentStatus          `json:"status"`
	SiteID          uuid.UUID              `json:"site_id" binding:"required"`
	SpaceID         *uuid.UUID             `json:"space_id"`
	CMSType         string                 `json:"cms_type" binding:"required"`
	OtherProperties map[string]interface{} `json:"other_properties"`
	TagIDs          []uuid.UUID            `json:"tag_ids"`
}

// UpdatePostRequest is a partial update; nil fields are left untouched.
// TagIDs, when present, replaces the whole tag set.
type UpdatePostRequest struct {
	Title           *string                `json:"title"`
	Content         *string                `json:"content"`
	Status          *ContentStatus         `json:"status"`
	SpaceID         *uuid.UUID             `json:"space_id"`
	Locked          *bool                  `json:"locked"`
	Hidden          *bool                  `json:"hidden"`
	OtherProperties map[string]interface{} `json:"other_properties"`
	TagIDs          *[]uuid.UUID           `json:"tag_ids"`
}

type PostListParams struct {
	CMSType  string `form:"cmsType"`
	Status   string `form:"status"`
	SpaceID  string `form:"spaceId"`
	AuthorID string `form:"authorId"`
	Limit    int    `form:"limit,default=20"`
	Offset   int    `form:"offset,default=0"`
}

type CreateSiteRequest struct {
	Name                 string   `json:"name" binding:"required,min=1,max=255"`
	Subdomain            *string  `json:"subdomain"`
	Domain               string   `json:"domain"`
	LogoURL              string   `json:"logo_url"`
	BrandColor           string   `json:"brand_color"`
	Plan                 string   `json:"plan"`
	SelectedContentTypes []string `json:"selectedContentTypes"`
}

type CreateSpaceRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=255"`
	Slug        string          `json:"slug" binding:"required"`
	Description string          `json:"description"`
	Visibility  SpaceVisibility `json:"visibility"`
	CMSType     string          `json:"cms_type" binding:"required"`
	Hidden      bool            `json:"hidden"`
}

type CreateTagRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}
