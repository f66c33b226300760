package migration

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type migrationRecord struct {
	Name      string    `gorm:"column:name;primaryKey;size:190;not null"`
	AppliedAt time.Time `gorm:"column:applied_at;not null"`
}

func (migrationRecord) TableName() string { return "schema_migrations" }

type migrationDefinition struct {
	name  string
	apply func(*gorm.DB) error
}

// Runner applies ledgered migrations once each, in order, every migration in
// its own transaction. It expects a pool capped at one connection so the
// statements run strictly sequentially (config.InitMigrationDB).
type Runner struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewRunner(db *gorm.DB, logger *zap.Logger) *Runner {
	return &Runner{db: db, logger: logger}
}

// Run executes the full migration set. Enum maintenance happens first,
// outside any transaction: ALTER TYPE ... ADD VALUE cannot run inside a
// transaction block on the Postgres versions we support.
func (r *Runner) Run() error {
	if err := r.db.AutoMigrate(&migrationRecord{}); err != nil {
		return err
	}

	if err := ensureContentStatusEnum(r.db); err != nil {
		return err
	}

	migrations := []migrationDefinition{
		{name: "2024-11-02_create_content_tables", apply: createContentTables},
		{name: "2025-03-18_create_posts_table", apply: createPostsTable},
		{name: "2025-03-18_add_extension_post_id", apply: addExtensionPostID},
		{name: "2025-03-19_backfill_posts", apply: backfillPosts},
		{name: "2025-03-19_migrate_content_tags", apply: migrateContentTags},
		{name: "2025-03-20_trim_extension_columns", apply: trimExtensionColumns},
	}

	for _, migration := range migrations {
		var record migrationRecord
		err := r.db.Where("name = ?", migration.name).Take(&record).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := r.db.Transaction(migration.apply); err != nil {
			r.logger.Error("migration failed",
				zap.String("migration", migration.name), zap.Error(err))
			return err
		}
		record = migrationRecord{Name: migration.name, AppliedAt: time.Now().UTC()}
		if err := r.db.Create(&record).Error; err != nil {
			return err
		}
		r.logger.Info("migration applied", zap.String("migration", migration.name))
	}

	return nil
}
