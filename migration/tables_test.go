package migration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLegacyTableRegistryIsComplete(t *testing.T) {
	expected := []string{
		"cms_discussions", "cms_qa_questions", "cms_qa_answers",
		"cms_knowledge_base_articles", "cms_ideas", "cms_changelogs",
		"cms_product_updates", "cms_roadmap_items", "cms_announcements",
		"cms_wiki_pages", "cms_courses", "cms_jobs", "cms_speakers",
		"cms_articles", "cms_polls", "cms_file_library", "cms_gallery_items",
		"cms_events",
	}

	names := make([]string, 0, len(LegacyTables))
	for _, table := range LegacyTables {
		names = append(names, table.Name)
	}
	assert.ElementsMatch(t, expected, names)
}

func TestLegacyTableRegistryUniqueCMSTypes(t *testing.T) {
	seen := map[string]string{}
	for _, table := range LegacyTables {
		prev, dup := seen[table.CMSType]
		assert.Falsef(t, dup, "cms_type %q used by both %s and %s", table.CMSType, prev, table.Name)
		seen[table.CMSType] = table.Name
		assert.NotEmpty(t, table.TitleColumn, table.Name)
		assert.NotEmpty(t, table.BodyColumn, table.Name)
	}
}

func TestCreateDDLCarriesDescriptiveAndExtraColumns(t *testing.T) {
	for _, table := range LegacyTables {
		ddl := table.CreateDDL()
		assert.Contains(t, ddl, table.Name)
		for _, column := range table.descriptiveColumns() {
			assert.Containsf(t, ddl, column, "%s missing %s", table.Name, column)
		}
		for _, extra := range table.ExtraColumns {
			assert.Contains(t, ddl, extra)
		}
	}
}

func TestDescriptiveColumnsNeverIncludeTypeSpecificFields(t *testing.T) {
	for _, table := range LegacyTables {
		dropped := table.descriptiveColumns()
		for _, extra := range table.ExtraColumns {
			name := strings.Fields(extra)[0]
			assert.NotContainsf(t, dropped, name, "%s would drop %s", table.Name, name)
		}
	}
}
