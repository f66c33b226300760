package repositories

import (
	"commune-cms/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type SiteRepository interface {
	Create(site *models.Site) error
	GetAll() ([]models.Site, error)
	GetByID(id uuid.UUID) (*models.Site, error)
	GetBySubdomain(subdomain string) (*models.Site, error)
	Update(site *models.Site) error
	CreateSpace(space *models.Space) error
	GetSpaces(siteID uuid.UUID) ([]models.Space, error)
	GetSpaceBySlug(siteID uuid.UUID, slug string) (*models.Space, error)
	ReconcileSpaceIDs(siteID uuid.UUID) error
}

type siteRepository struct {
	db *gorm.DB
}

func NewSiteRepository(db *gorm.DB) SiteRepository {
	return &siteRepository{db: db}
}

func (r *siteRepository) Create(site *models.Site) error {
	return r.db.Create(site).Error
}

func (r *siteRepository) GetAll() ([]models.Site, error) {
	var sites []models.Site
	err := r.db.Order("created_at desc").Find(&sites).Error
	return sites, err
}

func (r *siteRepository) GetByID(id uuid.UUID) (*models.Site, error) {
	var site models.Site
	err := r.db.First(&site, "id = ?", id).Error
	return &site, err
}

func (r *siteRepository) GetBySubdomain(subdomain string) (*models.Site, error) {
	var site models.Site
	err := r.db.Where("subdomain = ?", subdomain).First(&site).Error
	return &site, err
}

func (r *siteRepository) Update(site *models.Site) error {
	return r.db.Save(site).Error
}

func (r *siteRepository) CreateSpace(space *models.Space) error {
	return r.db.Create(space).Error
}

func (r *siteRepository) GetSpaces(siteID uuid.UUID) ([]models.Space, error) {
	var spaces []models.Space
	err := r.db.Where("site_id = ?", siteID).Order("created_at asc").Find(&spaces).Error
	return spaces, err
}

func (r *siteRepository) GetSpaceBySlug(siteID uuid.UUID, slug string) (*models.Space, error) {
	var space models.Space
	err := r.db.Where("site_id = ? AND slug = ?", siteID, slug).First(&space).Error
	return &space, err
}

// ReconcileSpaceIDs recomputes the denormalized sites.space_ids array from
// the spaces table. The array is a rebuildable cache, not a source of truth.
func (r *siteRepository) ReconcileSpaceIDs(siteID uuid.UUID) error {
	spaces, err := r.GetSpaces(siteID)
	if err != nil {
		return err
	}
	ids := make(pq.StringArray, 0, len(spaces))
	for _, space := range spaces {
		ids = append(ids, space.ID.String())
	}
	return r.db.Model(&models.Site{}).Where("id = ?", siteID).Update("space_ids", ids).Error
}
