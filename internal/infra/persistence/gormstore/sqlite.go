package gormstore

import (
	"strings"

	"kurvalgom/internal/errors"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

const sqlitePragmas = "_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"

// openSQLite opens a pure Go SQLite database. A bare file path gets the
// default pragmas appended; full DSNs are passed through untouched.
func openSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(sqliteDSN(path)), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}
	// SQLite serializes writers; one connection keeps transactions from tripping over SQLITE_BUSY.
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func sqliteDSN(path string) string {
	if strings.Contains(path, "?") || strings.HasPrefix(path, "file:") {
		return path
	}

	return "file:" + path + "?" + sqlitePragmas
}
