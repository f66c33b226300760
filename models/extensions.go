package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Extension tables: one per content kind, reduced after the unification
// migration to type-specific fields plus a 1:1 post_id back-reference.
// Descriptive fields (title, body, site/author/space, status, timestamps)
// live on the posts row.

type CMSDiscussion struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PostID       *uuid.UUID `json:"post_id" gorm:"type:uuid;uniqueIndex"`
	AllowReplies bool       `json:"allow_replies" gorm:"default:true"`
	Pinned       bool       `json:"pinned" gorm:"default:false"`
}

func (CMSDiscussion) TableName() string { return "cms_discussions" }

type CMSQAQuestion struct {
	ID               uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PostID           *uuid.UUID `json:"post_id" gorm:"type:uuid;uniqueIndex"`
	AcceptedAnswerID *uuid.UUID `json:"accepted_answer_id" gorm:"type:uuid"`
}

func (CMSQAQuestion) TableName() string { return "cms_qa_questions" }

type CMSQAAnswer struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PostID         *uuid.UUID `json:"post_id" gorm:"type:uuid;uniqueIndex"`
	QuestionPostID *uuid.UUID `json:"question_post_id" gorm:"type:uuid"`
	Accepted       bool       `json:"accepted" gorm:"default:false"`
}

func (CMSQAAnswer) TableName() string { return "cms_qa_answers" }

type CMSKnowledgeBaseArticle struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PostID     *uuid.UUID `json:"post_id" gorm:"type:uuid;uniqueIndex"`
	CategoryID *uuid.UUID `json:"category_id" gorm:"type:uuid"`
	SortOrder  int        `json:"sort_order" gorm:"default:0"`
}

func (CMSKnowledgeBaseArticle) TableName() string { return "cms_knowledge_base_articles" }

type CMSIdea struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PostID    *uuid.UUID `json:"post_id" gorm:"type:uuid;uniqueIndex"`
	VoteCount int        `json:"vote_count" gorm:"default:0"`
	Stage     string     `json:"stage" gorm:"default:'open'"`
}

func (CMSIdea) TableName() string { return "cms_ideas" }

type CMSChangelog struct {
	ID      uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PostID  *uuid.UUID `json:"post_id" gorm:"type:uuid;uniqueIndex"`
	Version string     `json:"version"`
}

func (CMSChangelog) TableName() string { return "cms_changelogs" }

type CMSProductUpdate struct {
	ID      uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PostID  *uuid.UUID `json:"post_id" gorm:"type:uuid;uniqueIndex"`
	Feature string     `json:"feature"`
}

func (CMSProductUpdate) TableName() string { return "cms_product_updates" }

type CMSRoadmapItem struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PostID        *uuid.UUID `json:"post_id" gorm:"type:uuid;uniqueIndex"`
	Stage         string     `json:"stage" gorm:"default:'planned'"`
	TargetQuarter string     `json:"target_quarter"`
}

func (CMSRoadmapItem) TableName() string { return "cms_roadmap_items" }

type CMSAnnouncement struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PostID    *uuid.UUID `json:"post_id" gorm:"type:uuid;uniqueIndex"`
	ExpiresAt *time.Time `json:"expires_at"`
	Banner    bool       `json:"banner" gorm:"default:false"`
}

func (CMSAnnouncement) TableName() string { return "cms_announcements" }

type CMSWikiPage struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PostID       *uuid.UUID `json:"post_id" gorm:"type:uuid;uniqueIndex"`
	ParentPageID *uuid.UUID `json:"parent_page_id" gorm:"type:uuid"`
}

func (CMSWikiPage) TableName() string { return "cms_wiki_pages" }

type CMSCourse struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PostID      *uuid.UUID `json:"post_id" gorm:"type:uuid;uniqueIndex"`
	LessonCount int        `json:"lesson_count" gorm:"default:0"`
	Level       string     `json:"level"`
}

func (CMSCourse) TableName() string { return "cms_courses" }

type CMSJob struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PostID      *uuid.UUID `json:"post_id" gorm:"type:uuid;uniqueIndex"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	SalaryRange string     `json:"salary_range"`
	ClosesAt    *time.Time `json:"closes_at"`
}

func (CMSJob) TableName() string { return "cms_jobs" }

type CMSSpeaker struct {
	ID       uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PostID   *uuid.UUID `json:"post_id" gorm:"type:uuid;uniqueIndex"`
	Company  string     `json:"company"`
	JobTitle string     `json:"job_title"`
	PhotoURL string     `json:"photo_url"`
}

func (CMSSpeaker) TableName() string { return "cms_speakers" }

type CMSArticle struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PostID        *uuid.UUID `json:"post_id" gorm:"type:uuid;uniqueIndex"`
	CoverImageURL string     `json:"cover_image_url"`
	Excerpt       string     `json:"excerpt"`
}

func (CMSArticle) TableName() string { return "cms_articles" }

type CMSPoll struct {
	ID            uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PostID        *uuid.UUID        `json:"post_id" gorm:"type:uuid;uniqueIndex"`
	Options       datatypes.JSONMap `json:"options" gorm:"type:jsonb"`
	AllowMultiple bool              `json:"allow_multiple" gorm:"default:false"`
	ClosesAt      *time.Time        `json:"closes_at"`
}

func (CMSPoll) TableName() string { return "cms_polls" }

type CMSFileLibraryItem struct {
	ID       uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PostID   *uuid.UUID `json:"post_id" gorm:"type:uuid;uniqueIndex"`
	FileURL  string     `json:"file_url"`
	FileSize int64      `json:"file_size"`
	MimeType string     `json:"mime_type"`
}

func (CMSFileLibraryItem) TableName() string { return "cms_file_library" }

type CMSGalleryItem struct {
	ID       uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PostID   *uuid.UUID `json:"post_id" gorm:"type:uuid;uniqueIndex"`
	ImageURL string     `json:"image_url"`
}

func (CMSGalleryItem) TableName() string { return "cms_gallery_items" }

type CMSEvent struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PostID        *uuid.UUID `json:"post_id" gorm:"type:uuid;uniqueIndex"`
	StartsAt      *time.Time `json:"starts_at"`
	EndsAt        *time.Time `json:"ends_at"`
	Location      string     `json:"location"`
	RSVPLimit     int        `json:"rsvp_limit" gorm:"default:0"`
	BannerImageID *uuid.UUID `json:"banner_image_id" gorm:"type:uuid"`
}

func (CMSEvent) TableName() string { return "cms_events" }

// ExtensionFor returns a fresh extension record for the given cms_type, or
// nil when the type has no extension table.
func ExtensionFor(cmsType string) interface{} {
	switch cmsType {
	case "discussion":
		return &CMSDiscussion{}
	case "qa_question":
		return &CMSQAQuestion{}
	case "qa_answer":
		return &CMSQAAnswer{}
	case "knowledge_base_article":
		return &CMSKnowledgeBaseArticle{}
	case "idea":
		return &CMSIdea{}
	case "changelog":
		return &CMSChangelog{}
	case "product_update":
		return &CMSProductUpdate{}
	case "roadmap_item":
		return &CMSRoadmapItem{}
	case "announcement":
		return &CMSAnnouncement{}
	case "wiki_page":
		return &CMSWikiPage{}
	case "course":
		return &CMSCourse{}
	case "job":
		return &CMSJob{}
	case "speaker":
		return &CMSSpeaker{}
	case "article":
		return &CMSArticle{}
	case "poll":
		return &CMSPoll{}
	case "file":
		return &CMSFileLibraryItem{}
	case "gallery_item":
		return &CMSGalleryItem{}
	case "event":
		return &CMSEvent{}
	}
	return nil
}
