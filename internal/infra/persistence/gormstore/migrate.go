package gormstore

import (
	"context"
	"database/sql"
	"time"

	"kurvalgom/internal/errors"
	"kurvalgom/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CurrentSchemaVersion is the newest schema this build knows how to create.
const CurrentSchemaVersion = 2

// ErrSchemaDowngrade is returned when the store is opened with a version older than the recorded one.
var ErrSchemaDowngrade = errors.New("schema downgrade is not supported")

type schemaMigration struct {
	Version   int `gorm:"primaryKey;autoIncrement:false"`
	AppliedAt time.Time
}

func (schemaMigration) TableName() string {
	return "schema_migrations"
}

// migrationStep upgrades the schema from version-1 to version.
type migrationStep func(tx *gorm.DB) error

var migrationSteps = map[int]migrationStep{
	1: migrateV1,
	2: migrateV2,
}

// Migrate applies every step above the recorded version up to target.
// Each step and its bookkeeping row commit in one transaction.
func Migrate(ctx context.Context, db *gorm.DB, target int) error {
	if target < 1 || target > CurrentSchemaVersion {
		return errors.Errorf("unknown schema version %d", target)
	}

	db = db.WithContext(ctx)
	if err := db.AutoMigrate(&schemaMigration{}); err != nil {
		return errors.Wrap(err, "create schema_migrations")
	}

	current, err := SchemaVersion(ctx, db)
	if err != nil {
		return err
	}
	if target < current {
		return errors.Wrapf(ErrSchemaDowngrade, "recorded version %d, requested %d", current, target)
	}

	for version := current + 1; version <= target; version++ {
		step := migrationSteps[version]
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := step(tx); err != nil {
				return err
			}

			return tx.Create(&schemaMigration{Version: version, AppliedAt: time.Now().UTC()}).Error
		})
		if err != nil {
			return errors.Wrapf(err, "apply schema version %d", version)
		}
	}

	return nil
}

// SchemaVersion returns the highest applied schema version, or 0 for an empty database.
func SchemaVersion(ctx context.Context, db *gorm.DB) (int, error) {
	var version sql.NullInt64
	row := db.WithContext(ctx).Model(&schemaMigration{}).Select("MAX(version)").Row()
	if err := row.Scan(&version); err != nil {
		return 0, errors.Wrap(err, "read schema version")
	}

	return int(version.Int64), nil
}

// v1 tables as they were first shipped. Kept local so later model changes do not rewrite history.
type userV1 struct {
	ID           uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	Username     string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_users_username"`
	Email        string    `gorm:"type:varchar(255);index:idx_users_email"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
}

func (userV1) TableName() string { return "users" }

type blogPostV1 struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index:idx_blog_posts_user_id"`
	Image     string    `gorm:"type:text"`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time
}

func (blogPostV1) TableName() string { return "blog_posts" }

func migrateV1(tx *gorm.DB) error {
	if err := tx.Migrator().CreateTable(&userV1{}, &blogPostV1{}); err != nil {
		return errors.Wrap(err, "create v1 tables")
	}

	return nil
}

// migrateV2 extends blog_posts in place and adds the history table. Existing posts keep their rows.
func migrateV2(tx *gorm.DB) error {
	m := tx.Migrator()
	post := &model.BlogPostModel{}

	for _, field := range []string{"Rating", "Restaurant", "UpdatedAt"} {
		if m.HasColumn(post, field) {
			continue
		}
		if err := m.AddColumn(post, field); err != nil {
			return errors.Wrapf(err, "add blog_posts.%s", field)
		}
	}

	if !m.HasIndex(post, "idx_blog_posts_created_at") {
		if err := m.CreateIndex(post, "idx_blog_posts_created_at"); err != nil {
			return errors.Wrap(err, "create blog_posts created_at index")
		}
	}

	if err := m.CreateTable(&model.HistoryEntryModel{}); err != nil {
		return errors.Wrap(err, "create history_entries")
	}

	return nil
}
