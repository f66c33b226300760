package services

import "strings"

// Display names for the content types a site can enable. Keys are the
// canonical type identifiers carried in cms_type columns.
var cmsTypeNames = map[string]string{
	"discussion":             "Discussions",
	"qa_question":            "Q&A",
	"knowledge_base_article": "Knowledge Base",
	"idea":                   "Ideas",
	"changelog":              "Changelog",
	"product_update":         "Product Updates",
	"roadmap_item":           "Roadmap",
	"announcement":           "Announcements",
	"wiki_page":              "Wiki",
	"course":                 "Courses",
	"job":                    "Jobs",
	"speaker":                "Speakers",
	"article":                "Articles",
	"poll":                   "Polls",
	"file":                   "Files",
	"gallery_item":           "Gallery",
	"event":                  "Events",
}

// substring fallbacks for ids that embed the kind, e.g. "discussion-type-id"
var cmsTypeHints = []struct {
	hint string
	name string
}{
	{"discussion", "Discussions"},
	{"question", "Q&A"},
	{"knowledge", "Knowledge Base"},
	{"idea", "Ideas"},
	{"changelog", "Changelog"},
	{"roadmap", "Roadmap"},
	{"announcement", "Announcements"},
	{"wiki", "Wiki"},
	{"course", "Courses"},
	{"job", "Jobs"},
	{"speaker", "Speakers"},
	{"article", "Articles"},
	{"poll", "Polls"},
	{"gallery", "Gallery"},
	{"event", "Events"},
}

// ResolveCMSTypeName maps a content-type identifier to a human-readable space
// name. Unknown ids fall back to substring matching, then to the id itself
// with its first letter upper-cased.
func ResolveCMSTypeName(id string) string {
	if name, ok := cmsTypeNames[id]; ok {
		return name
	}
	lower := strings.ToLower(id)
	for _, h := range cmsTypeHints {
		if strings.Contains(lower, h.hint) {
			return h.name
		}
	}
	if id == "" {
		return "Content"
	}
	return strings.ToUpper(id[:1]) + id[1:]
}

// MakeSlug converts a name into a lower-kebab ASCII slug. Runs of anything
// outside [a-z0-9] collapse to one hyphen; leading and trailing hyphens are
// trimmed; an empty result becomes "space".
func MakeSlug(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	lastWasDash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastWasDash = false
		default:
			if !lastWasDash {
				b.WriteRune('-')
				lastWasDash = true
			}
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "space"
	}
	if len(slug) > 100 {
		slug = strings.TrimRight(slug[:100], "-")
	}
	return slug
}

// ValidSlug reports whether s is already in slug form.
func ValidSlug(s string) bool {
	return s != "" && s == MakeSlug(s)
}
