package gormstore

import (
	"kurvalgom/config"
	"kurvalgom/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"gorm.io/gorm"
)

// openPostgres creates the PostgreSQL client through the shared connection library,
// which also wires read replicas when configured.
func openPostgres(cfg *config.Config) (*gorm.DB, error) {
	if cfg.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Map driver errors such as unique violations onto gorm sentinels.
	db.Config.TranslateError = true

	return db, nil
}
