package postgres

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"catalog/internal/errors"
)

// OpenSQLite opens a pure-Go SQLite database. It backs local development
// (database.driver: sqlite) and the repository tests.
// SQLite serialises writers, so the pool is pinned to one connection.
func OpenSQLite(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}
