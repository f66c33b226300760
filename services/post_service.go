package services

import (
	"time"

	"commune-cms/models"
	"commune-cms/repositories"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PostService interface {
	CreatePost(req models.CreatePostRequest, userID uuid.UUID) (*models.Post, error)
	GetPost(id uuid.UUID) (*models.PostDetail, error)
	ListPosts(siteID uuid.UUID, params models.PostListParams) ([]models.Post, error)
	UpdatePost(id uuid.UUID, req models.UpdatePostRequest) (*models.Post, error)
	DeletePost(id uuid.UUID) error
}

type postService struct {
	postRepo repositories.PostRepository
}

func NewPostService(postRepo repositories.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func (s *postService) CreatePost(req models.CreatePostRequest, userID uuid.UUID) (*models.Post, error) {
	status := req.Status
	if status == "" {
		status = models.StatusDraft
	}
	if !models.ValidContentStatus(status) {
		return nil, ErrInvalidStatus
	}

	post := &models.Post{
		Title:           req.Title,
		Content:         req.Content,
		Status:          status,
		AuthorID:        &userID,
		SpaceID:         req.SpaceID,
		SiteID:          req.SiteID,
		CMSType:         req.CMSType,
		OtherProperties: datatypes.JSONMap(req.OtherProperties),
	}
	if status == models.StatusPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := s.postRepo.CreateWithTags(post, req.TagIDs); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) GetPost(id uuid.UUID) (*models.PostDetail, error) {
	return s.postRepo.GetDetail(id)
}

func (s *postService) ListPosts(siteID uuid.UUID, params models.PostListParams) ([]models.Post, error) {
	if params.Status != "" && !models.ValidContentStatus(models.ContentStatus(params.Status)) {
		return nil, ErrInvalidStatus
	}
	return s.postRepo.List(siteID, params)
}

func (s *postService) UpdatePost(id uuid.UUID, req models.UpdatePostRequest) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Status != nil {
		if !models.ValidContentStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		if *req.Status == models.StatusPublished && post.Status != models.StatusPublished {
			now := time.Now()
			post.PublishedAt = &now
		}
		post.Status = *req.Status
	}
	if req.SpaceID != nil {
		post.SpaceID = req.SpaceID
	}
	if req.Locked != nil {
		post.Locked = *req.Locked
	}
	if req.Hidden != nil {
		post.Hidden = *req.Hidden
	}
	if req.OtherProperties != nil {
		post.OtherProperties = MergeProperties(post.OtherProperties, req.OtherProperties)
	}

	if err := s.postRepo.UpdateWithTags(post, req.TagIDs); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) DeletePost(id uuid.UUID) error {
	if _, err := s.postRepo.GetByID(id); err != nil {
		return err
	}
	return s.postRepo.Delete(id)
}

// MergeProperties applies the update semantics for the other_properties bag:
// when both the existing and incoming values are non-empty objects the result
// is their union with incoming keys winning, otherwise the incoming value
// replaces the bag outright.
func MergeProperties(existing datatypes.JSONMap, incoming map[string]interface{}) datatypes.JSONMap {
	if len(existing) == 0 || len(incoming) == 0 {
		return datatypes.JSONMap(incoming)
	}
	merged := make(datatypes.JSONMap, len(existing)+len(incoming))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range incoming {
		merged[k] = v
	}
	return merged
}
