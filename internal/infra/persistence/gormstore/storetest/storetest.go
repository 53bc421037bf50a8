// Package storetest opens throwaway SQLite databases for repository and usecase tests.
package storetest

import (
	"context"
	"testing"

	"kurvalgom/internal/infra/persistence/gormstore"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenMemory returns an isolated in-memory database migrated to the current schema.
func OpenMemory(t *testing.T) *gorm.DB {
	t.Helper()

	return OpenMemoryAt(t, gormstore.CurrentSchemaVersion)
}

// OpenMemoryAt returns an isolated in-memory database migrated to the given version.
func OpenMemoryAt(t *testing.T, version int) *gorm.DB {
	t.Helper()

	db := OpenRaw(t)
	require.NoError(t, gormstore.Migrate(context.Background(), db, version))

	return db
}

// OpenRaw returns an isolated, unmigrated in-memory database. It is closed on test cleanup.
func OpenRaw(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}
