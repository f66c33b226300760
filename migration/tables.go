package migration

import (
	"fmt"
	"strings"
)

// LegacyTable describes one per-content-type table: where its title and body
// equivalents live, which cms_type its rows become, and which of its columns
// are type-specific (everything else is descriptive and gets dropped once the
// posts row owns it).
type LegacyTable struct {
	Name        string
	TitleColumn string
	BodyColumn  string
	CMSType     string
	// ExtraColumns are the type-specific column definitions that survive the
	// unification, e.g. "allow_replies boolean default true".
	ExtraColumns []string
}

// LegacyTables is the registry driving every per-table step of the
// unification migration. Order is stable so reruns walk tables the same way.
var LegacyTables = []LegacyTable{
	{
		Name: "cms_discussions", TitleColumn: "title", BodyColumn: "body", CMSType: "discussion",
		ExtraColumns: []string{"allow_replies boolean DEFAULT true", "pinned boolean DEFAULT false"},
	},
	{
		Name: "cms_qa_questions", TitleColumn: "question", BodyColumn: "details", CMSType: "qa_question",
		ExtraColumns: []string{"accepted_answer_id uuid"},
	},
	{
		Name: "cms_qa_answers", TitleColumn: "summary", BodyColumn: "answer", CMSType: "qa_answer",
		ExtraColumns: []string{"question_post_id uuid", "accepted boolean DEFAULT false"},
	},
	{
		Name: "cms_knowledge_base_articles", TitleColumn: "title", BodyColumn: "body", CMSType: "knowledge_base_article",
		ExtraColumns: []string{"category_id uuid", "sort_order integer DEFAULT 0"},
	},
	{
		Name: "cms_ideas", TitleColumn: "title", BodyColumn: "description", CMSType: "idea",
		ExtraColumns: []string{"vote_count integer DEFAULT 0", "stage text DEFAULT 'open'"},
	},
	{
		Name: "cms_changelogs", TitleColumn: "title", BodyColumn: "notes", CMSType: "changelog",
		ExtraColumns: []string{"version text"},
	},
	{
		Name: "cms_product_updates", TitleColumn: "title", BodyColumn: "body", CMSType: "product_update",
		ExtraColumns: []string{"feature text"},
	},
	{
		Name: "cms_roadmap_items", TitleColumn: "title", BodyColumn: "description", CMSType: "roadmap_item",
		ExtraColumns: []string{"stage text DEFAULT 'planned'", "target_quarter text"},
	},
	{
		Name: "cms_announcements", TitleColumn: "title", BodyColumn: "body", CMSType: "announcement",
		ExtraColumns: []string{"expires_at timestamptz", "banner boolean DEFAULT false"},
	},
	{
		Name: "cms_wiki_pages", TitleColumn: "title", BodyColumn: "body", CMSType: "wiki_page",
		ExtraColumns: []string{"parent_page_id uuid"},
	},
	{
		Name: "cms_courses", TitleColumn: "title", BodyColumn: "description", CMSType: "course",
		ExtraColumns: []string{"lesson_count integer DEFAULT 0", "level text"},
	},
	{
		Name: "cms_jobs", TitleColumn: "title", BodyColumn: "description", CMSType: "job",
		ExtraColumns: []string{"company text", "location text", "salary_range text", "closes_at timestamptz"},
	},
	{
		Name: "cms_speakers", TitleColumn: "name", BodyColumn: "bio", CMSType: "speaker",
		ExtraColumns: []string{"company text", "job_title text", "photo_url text"},
	},
	{
		Name: "cms_articles", TitleColumn: "title", BodyColumn: "body", CMSType: "article",
		ExtraColumns: []string{"cover_image_url text", "excerpt text"},
	},
	{
		Name: "cms_polls", TitleColumn: "question", BodyColumn: "description", CMSType: "poll",
		ExtraColumns: []string{"options jsonb", "allow_multiple boolean DEFAULT false", "closes_at timestamptz"},
	},
	{
		Name: "cms_file_library", TitleColumn: "file_name", BodyColumn: "description", CMSType: "file",
		ExtraColumns: []string{"file_url text", "file_size bigint", "mime_type text"},
	},
	{
		Name: "cms_gallery_items", TitleColumn: "title", BodyColumn: "caption", CMSType: "gallery_item",
		ExtraColumns: []string{"image_url text"},
	},
	{
		Name: "cms_events", TitleColumn: "title", BodyColumn: "description", CMSType: "event",
		ExtraColumns: []string{
			"starts_at timestamptz", "ends_at timestamptz", "location text",
			"rsvp_limit integer DEFAULT 0", "banner_image_id uuid",
		},
	},
}

// descriptiveColumns are the per-type columns whose data moves to posts and
// which trim-extension-columns removes from every legacy table.
func (t LegacyTable) descriptiveColumns() []string {
	return []string{
		t.TitleColumn, t.BodyColumn,
		"site_id", "author_id", "space_id", "status",
		"published_at", "created_at", "updated_at",
	}
}

// CreateDDL returns the pre-unification shape of the table: full descriptive
// columns plus the type-specific extras.
func (t LegacyTable) CreateDDL() string {
	cols := []string{
		"id uuid PRIMARY KEY DEFAULT gen_random_uuid()",
		fmt.Sprintf("%s text NOT NULL", t.TitleColumn),
		fmt.Sprintf("%s text", t.BodyColumn),
		"site_id uuid",
		"author_id uuid",
		"space_id uuid",
		"status text DEFAULT 'draft'",
		"published_at timestamptz",
		"created_at timestamptz DEFAULT now()",
		"updated_at timestamptz DEFAULT now()",
	}
	cols = append(cols, t.ExtraColumns...)
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)", t.Name, strings.Join(cols, ",\n\t"))
}
