package repositories

import (
	"commune-cms/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TagRepository interface {
	Create(tag *models.Tag) error
	GetBySite(siteID uuid.UUID) ([]models.Tag, error)
	GetBySiteAndName(siteID uuid.UUID, name string) (*models.Tag, error)
	GetByID(id uuid.UUID) (*models.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

func (r *tagRepository) GetBySite(siteID uuid.UUID) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Where("site_id = ?", siteID).Order("name asc").Find(&tags).Error
	return tags, err
}

func (r *tagRepository) GetBySiteAndName(siteID uuid.UUID, name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("site_id = ? AND name = ?", siteID, name).First(&tag).Error
	return &tag, err
}

func (r *tagRepository) GetByID(id uuid.UUID) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, "id = ?", id).Error
	return &tag, err
}
