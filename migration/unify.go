package migration

import (
	"fmt"

	"gorm.io/gorm"
)

// ensureContentStatusEnum creates the content_status enum and extends it with
// the later values. ADD VALUE must run outside a transaction block, which is
// why this is not a ledgered migration.
func ensureContentStatusEnum(db *gorm.DB) error {
	statements := []string{
		`DO $$ BEGIN
			CREATE TYPE content_status AS ENUM ('draft', 'published', 'archived');
		EXCEPTION WHEN duplicate_object THEN NULL;
		END $$`,
		`ALTER TYPE content_status ADD VALUE IF NOT EXISTS 'scheduled'`,
		`ALTER TYPE content_status ADD VALUE IF NOT EXISTS 'pending_review'`,
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

// createContentTables lays down the original schema: base tables plus one
// full table per content type.
func createContentTables(tx *gorm.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			username text NOT NULL UNIQUE,
			email text NOT NULL UNIQUE,
			password text NOT NULL,
			full_name text,
			avatar_url text,
			role varchar(20) DEFAULT 'member',
			created_at timestamptz DEFAULT now(),
			updated_at timestamptz DEFAULT now(),
			deleted_at timestamptz
		)`,
		`CREATE TABLE IF NOT EXISTS sites (
			id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			name text NOT NULL,
			subdomain text UNIQUE,
			owner_id uuid NOT NULL,
			status varchar(20) DEFAULT 'active',
			logo_url text,
			brand_color text,
			content_types text[],
			space_ids text[],
			plan text DEFAULT 'free',
			created_at timestamptz DEFAULT now(),
			updated_at timestamptz DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS spaces (
			id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			name text NOT NULL,
			slug text NOT NULL,
			description text,
			creator_id uuid NOT NULL,
			site_id uuid NOT NULL REFERENCES sites(id) ON DELETE CASCADE,
			visibility varchar(20) DEFAULT 'public',
			cms_type text NOT NULL,
			hidden boolean DEFAULT false,
			created_at timestamptz DEFAULT now(),
			updated_at timestamptz DEFAULT now(),
			CONSTRAINT idx_spaces_site_slug UNIQUE (site_id, slug)
		)`,
		`CREATE TABLE IF NOT EXISTS tags (
			id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			site_id uuid NOT NULL,
			name text NOT NULL,
			created_at timestamptz DEFAULT now(),
			updated_at timestamptz DEFAULT now(),
			CONSTRAINT idx_tags_site_name UNIQUE (site_id, name)
		)`,
		`CREATE TABLE IF NOT EXISTS content_tags (
			id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			content_id uuid NOT NULL,
			content_type text NOT NULL,
			tag_id uuid NOT NULL,
			created_at timestamptz DEFAULT now()
		)`,
	}
	for _, table := range LegacyTables {
		statements = append(statements, table.CreateDDL())
	}
	for _, stmt := range statements {
		if err := tx.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

// createPostsTable creates the unified posts table and the typed post_tags
// junction. legacy_source_table/legacy_source_id carry the origin of every
// migrated row; the unique pair is what makes the backfill re-runnable.
func createPostsTable(tx *gorm.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS posts (
			id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			title text NOT NULL,
			content text,
			status content_status DEFAULT 'draft',
			author_id uuid,
			space_id uuid,
			site_id uuid NOT NULL,
			cms_type text NOT NULL,
			published_at timestamptz,
			locked boolean DEFAULT false,
			hidden boolean DEFAULT false,
			other_properties jsonb,
			legacy_source_table text,
			legacy_source_id uuid,
			created_at timestamptz DEFAULT now(),
			updated_at timestamptz DEFAULT now()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_posts_legacy_source
			ON posts (legacy_source_table, legacy_source_id)`,
		`CREATE INDEX IF NOT EXISTS idx_posts_site_id ON posts (site_id)`,
		`CREATE INDEX IF NOT EXISTS idx_posts_cms_type ON posts (cms_type)`,
		`CREATE TABLE IF NOT EXISTS post_tags (
			post_id uuid NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
			tag_id uuid NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
			created_at timestamptz DEFAULT now(),
			PRIMARY KEY (post_id, tag_id)
		)`,
	}
	for _, stmt := range statements {
		if err := tx.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

func addExtensionPostID(tx *gorm.DB) error {
	for _, table := range LegacyTables {
		stmt := fmt.Sprintf(
			`ALTER TABLE %s ADD COLUMN IF NOT EXISTS post_id uuid REFERENCES posts(id)`,
			table.Name,
		)
		if err := tx.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

// backfillPosts copies every legacy row into posts and writes the new post id
// back onto its source row. Correlation goes through the carried legacy key,
// never through the title: titles are user-editable and not unique.
func backfillPosts(tx *gorm.DB) error {
	for _, table := range LegacyTables {
		insert := fmt.Sprintf(`
			INSERT INTO posts (title, content, status, author_id, space_id, site_id,
				cms_type, published_at, created_at, updated_at,
				legacy_source_table, legacy_source_id)
			SELECT t.%s, t.%s, COALESCE(t.status, 'draft')::content_status,
				t.author_id, t.space_id, t.site_id, '%s',
				t.published_at, t.created_at, t.updated_at, '%s', t.id
			FROM %s t
			WHERE t.site_id IS NOT NULL
			ON CONFLICT (legacy_source_table, legacy_source_id) DO NOTHING`,
			table.TitleColumn, table.BodyColumn, table.CMSType, table.Name, table.Name,
		)
		if err := tx.Exec(insert).Error; err != nil {
			return err
		}

		correlate := fmt.Sprintf(`
			UPDATE %s t SET post_id = p.id
			FROM posts p
			WHERE p.legacy_source_table = '%s'
				AND p.legacy_source_id = t.id
				AND t.post_id IS NULL`,
			table.Name, table.Name,
		)
		if err := tx.Exec(correlate).Error; err != nil {
			return err
		}
	}
	return nil
}

// migrateContentTags rewrites the polymorphic (content_id, content_type) tag
// links into the typed post_tags junction.
func migrateContentTags(tx *gorm.DB) error {
	stmt := `
		INSERT INTO post_tags (post_id, tag_id, created_at)
		SELECT p.id, ct.tag_id, COALESCE(ct.created_at, now())
		FROM content_tags ct
		JOIN posts p ON p.legacy_source_id = ct.content_id
			AND p.cms_type = ct.content_type
		ON CONFLICT (post_id, tag_id) DO NOTHING`
	return tx.Exec(stmt).Error
}

// trimExtensionColumns drops the descriptive columns the posts row now owns,
// leaving each legacy table as a slim extension keyed by post_id.
//
// A row without a post_id was never backfilled (the backfill skips rows with
// a NULL site_id); dropping its columns would destroy its only copy of the
// content. The whole step aborts and rolls back until those rows are repaired
// or removed.
func trimExtensionColumns(tx *gorm.DB) error {
	for _, table := range LegacyTables {
		var orphans int64
		if err := tx.Table(table.Name).Where("post_id IS NULL").Count(&orphans).Error; err != nil {
			return err
		}
		if orphans > 0 {
			return fmt.Errorf("%s: %d rows have no post reference, refusing to drop columns", table.Name, orphans)
		}
		for _, column := range table.descriptiveColumns() {
			stmt := fmt.Sprintf(`ALTER TABLE %s DROP COLUMN IF EXISTS %s`, table.Name, column)
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
