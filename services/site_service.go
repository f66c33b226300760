package services

import (
	"errors"
	"log"

	"commune-cms/models"
	"commune-cms/repositories"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type SiteService interface {
	CreateSite(req models.CreateSiteRequest, ownerID uuid.UUID) (*models.Site, error)
	GetSites() ([]models.Site, error)
	GetSite(identifier string) (*models.Site, error)
	CreateSpace(siteID uuid.UUID, req models.CreateSpaceRequest, creatorID uuid.UUID) (*models.Space, error)
	GetSpaces(siteID uuid.UUID) ([]models.Space, error)
	ReconcileSpaces(siteID uuid.UUID) (*models.Site, error)
}

type siteService struct {
	siteRepo    repositories.SiteRepository
	brandLookup BrandLookup
}

func NewSiteService(siteRepo repositories.SiteRepository, brandLookup BrandLookup) SiteService {
	return &siteService{siteRepo: siteRepo, brandLookup: brandLookup}
}

func (s *siteService) CreateSite(req models.CreateSiteRequest, ownerID uuid.UUID) (*models.Site, error) {
	if req.Subdomain != nil && *req.Subdomain != "" {
		_, err := s.siteRepo.GetBySubdomain(*req.Subdomain)
		if err == nil {
			return nil, ErrSubdomainTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	logoURL := req.LogoURL
	brandColor := req.BrandColor
	if logoURL == "" && brandColor == "" && req.Domain != "" {
		info, err := s.brandLookup.Lookup(req.Domain)
		if err != nil {
			log.Printf("brand lookup failed for %s: %v", req.Domain, err)
		} else {
			logoURL = info.LogoURL
			brandColor = info.BrandColor
		}
	}

	plan := req.Plan
	if plan == "" {
		plan = "free"
	}

	site := &models.Site{
		Name:         req.Name,
		Subdomain:    req.Subdomain,
		OwnerID:      ownerID,
		Status:       models.SiteActive,
		LogoURL:      logoURL,
		BrandColor:   brandColor,
		ContentTypes: pq.StringArray(req.SelectedContentTypes),
		Plan:         plan,
	}
	if err := s.siteRepo.Create(site); err != nil {
		return nil, err
	}

	// One default space per selected content type. The accumulated ids are
	// written back onto the site in a second update; space_ids is a cache of
	// the child rows, not the source of truth.
	if len(req.SelectedContentTypes) > 0 {
		spaceIDs := make(pq.StringArray, 0, len(req.SelectedContentTypes))
		for _, typeID := range req.SelectedContentTypes {
			name := ResolveCMSTypeName(typeID)
			space := &models.Space{
				Name:       name,
				Slug:       MakeSlug(name),
				CreatorID:  ownerID,
				SiteID:     site.ID,
				Visibility: models.SpacePublic,
				CMSType:    typeID,
			}
			if err := s.siteRepo.CreateSpace(space); err != nil {
				return nil, err
			}
			spaceIDs = append(spaceIDs, space.ID.String())
		}
		site.SpaceIDs = spaceIDs
		if err := s.siteRepo.Update(site); err != nil {
			return nil, err
		}
	}

	return site, nil
}

func (s *siteService) GetSites() ([]models.Site, error) {
	return s.siteRepo.GetAll()
}

// GetSite resolves a site by UUID or, failing that, by subdomain.
func (s *siteService) GetSite(identifier string) (*models.Site, error) {
	if id, err := uuid.Parse(identifier); err == nil {
		return s.siteRepo.GetByID(id)
	}
	return s.siteRepo.GetBySubdomain(identifier)
}

func (s *siteService) CreateSpace(siteID uuid.UUID, req models.CreateSpaceRequest, creatorID uuid.UUID) (*models.Space, error) {
	site, err := s.siteRepo.GetByID(siteID)
	if err != nil {
		return nil, err
	}

	if !ValidSlug(req.Slug) {
		return nil, ErrInvalidSlug
	}
	_, err = s.siteRepo.GetSpaceBySlug(siteID, req.Slug)
	if err == nil {
		return nil, ErrSlugTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	visibility := req.Visibility
	if visibility == "" {
		visibility = models.SpacePublic
	}

	space := &models.Space{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		CreatorID:   creatorID,
		SiteID:      siteID,
		Visibility:  visibility,
		CMSType:     req.CMSType,
		Hidden:      req.Hidden,
	}
	if err := s.siteRepo.CreateSpace(space); err != nil {
		return nil, err
	}

	// Idempotent append to the denormalized arrays.
	site.SpaceIDs = appendUnique(site.SpaceIDs, space.ID.String())
	if req.CMSType != "" {
		site.ContentTypes = appendUnique(site.ContentTypes, req.CMSType)
	}
	if err := s.siteRepo.Update(site); err != nil {
		return nil, err
	}

	return space, nil
}

func (s *siteService) GetSpaces(siteID uuid.UUID) ([]models.Space, error) {
	if _, err := s.siteRepo.GetByID(siteID); err != nil {
		return nil, err
	}
	return s.siteRepo.GetSpaces(siteID)
}

// ReconcileSpaces rebuilds the site's space_ids cache from the spaces table
// and returns the refreshed site.
func (s *siteService) ReconcileSpaces(siteID uuid.UUID) (*models.Site, error) {
	if _, err := s.siteRepo.GetByID(siteID); err != nil {
		return nil, err
	}
	if err := s.siteRepo.ReconcileSpaceIDs(siteID); err != nil {
		return nil, err
	}
	return s.siteRepo.GetByID(siteID)
}

func appendUnique(arr pq.StringArray, value string) pq.StringArray {
	for _, v := range arr {
		if v == value {
			return arr
		}
	}
	return append(arr, value)
}
