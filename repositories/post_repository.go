package repositories

import (
	"errors"

	"commune-cms/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostRepository interface {
	CreateWithTags(post *models.Post, tagIDs []uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Post, error)
	GetDetail(id uuid.UUID) (*models.PostDetail, error)
	List(siteID uuid.UUID, params models.PostListParams) ([]models.Post, error)
	UpdateWithTags(post *models.Post, tagIDs *[]uuid.UUID) error
	Delete(id uuid.UUID) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// filterSiteTags returns the subset of ids that resolve to tags under the
// given site. Unknown or foreign ids are dropped without error; tags are
// only valid within their own site.
func filterSiteTags(tx *gorm.DB, siteID uuid.UUID, ids []uuid.UUID) ([]models.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []models.Tag
	err := tx.Where("site_id = ? AND id IN ?", siteID, ids).Find(&tags).Error
	return tags, err
}

func (r *postRepository) CreateWithTags(post *models.Post, tagIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Create(post).Error; err != nil {
			return err
		}

		tags, err := filterSiteTags(tx, post.SiteID, tagIDs)
		if err != nil {
			return err
		}
		for _, tag := range tags {
			link := models.PostTag{PostID: post.ID, TagID: tag.ID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		post.Tags = tags
		return nil
	})
}

func (r *postRepository) GetByID(id uuid.UUID) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Tags").First(&post, "id = ?", id).Error
	return &post, err
}

func (r *postRepository) GetDetail(id uuid.UUID) (*models.PostDetail, error) {
	post, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	detail := &models.PostDetail{Post: *post}

	if post.AuthorID != nil {
		var author models.AuthorProfile
		err := r.db.Model(&models.User{}).
			Select("id", "username", "full_name", "avatar_url").
			Where("id = ?", *post.AuthorID).
			Take(&author).Error
		if err == nil {
			detail.Author = &author
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if post.SpaceID != nil {
		var space models.SpaceSummary
		err := r.db.Model(&models.Space{}).
			Select("id", "name").
			Where("id = ?", *post.SpaceID).
			Take(&space).Error
		if err == nil {
			detail.Space = &space
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if ext := models.ExtensionFor(post.CMSType); ext != nil {
		err := r.db.Where("post_id = ?", post.ID).Take(ext).Error
		if err == nil {
			detail.Extension = ext
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return detail, nil
}

func (r *postRepository) List(siteID uuid.UUID, params models.PostListParams) ([]models.Post, error) {
	query := r.db.Model(&models.Post{}).Preload("Tags").Where("site_id = ?", siteID)

	if params.CMSType != "" {
		query = query.Where("cms_type = ?", params.CMSType)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.SpaceID != "" {
		query = query.Where("space_id = ?", params.SpaceID)
	}
	if params.AuthorID != "" {
		query = query.Where("author_id = ?", params.AuthorID)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	var posts []models.Post
	err := query.Order("created_at desc").Offset(params.Offset).Limit(limit).Find(&posts).Error
	return posts, err
}

func (r *postRepository) UpdateWithTags(post *models.Post, tagIDs *[]uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Save(post).Error; err != nil {
			return err
		}

		if tagIDs == nil {
			return nil
		}

		// Full replacement: drop every existing link, re-insert the valid
		// site-scoped subset.
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		tags, err := filterSiteTags(tx, post.SiteID, *tagIDs)
		if err != nil {
			return err
		}
		for _, tag := range tags {
			link := models.PostTag{PostID: post.ID, TagID: tag.ID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		post.Tags = tags
		return nil
	})
}

func (r *postRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, "id = ?", id).Error
	})
}
