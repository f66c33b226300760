package services

import (
	"errors"

	"commune-cms/models"
	"commune-cms/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TagService interface {
	CreateTag(siteID uuid.UUID, req models.CreateTagRequest) (*models.Tag, error)
	GetTags(siteID uuid.UUID) ([]models.Tag, error)
}

type tagService struct {
	tagRepo  repositories.TagRepository
	siteRepo repositories.SiteRepository
}

func NewTagService(tagRepo repositories.TagRepository, siteRepo repositories.SiteRepository) TagService {
	return &tagService{tagRepo: tagRepo, siteRepo: siteRepo}
}

func (s *tagService) CreateTag(siteID uuid.UUID, req models.CreateTagRequest) (*models.Tag, error) {
	if _, err := s.siteRepo.GetByID(siteID); err != nil {
		return nil, err
	}

	_, err := s.tagRepo.GetBySiteAndName(siteID, req.Name)
	if err == nil {
		return nil, errors.New("tag already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag := &models.Tag{SiteID: siteID, Name: req.Name}
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *tagService) GetTags(siteID uuid.UUID) ([]models.Tag, error) {
	if _, err := s.siteRepo.GetByID(siteID); err != nil {
		return nil, err
	}
	return s.tagRepo.GetBySite(siteID)
}
