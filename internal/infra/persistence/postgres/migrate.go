package postgres

import (
	"context"

	"catalog/config"
	"catalog/internal/errors"
	"catalog/internal/infra/persistence/migrations"
	"catalog/internal/infra/persistence/model"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

const (
	migrationsDir = "."
	gooseDialect  = "postgres"
)

// Migrate brings the schema up to date. PostgreSQL runs the embedded goose
// migrations; SQLite is migrated from the GORM models.
func Migrate(ctx context.Context, db *gorm.DB, driver string) error {
	if driver == config.DriverSQLite {
		if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
			return errors.Wrap(err, "failed to auto-migrate SQLite schema")
		}

		return nil
	}

	return RunMigrations(ctx, db, driver, "up")
}

// RunMigrations executes a goose command (up, down, status, redo, reset, version)
// against the embedded migrations. SQLite only supports "up".
func RunMigrations(ctx context.Context, db *gorm.DB, driver, command string, args ...string) error {
	if driver == config.DriverSQLite {
		if command != "up" {
			return errors.Errorf("goose %s is not supported for SQLite", command)
		}

		return Migrate(ctx, db, driver)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB for migrations")
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect(gooseDialect); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	if err := goose.RunContext(ctx, command, sqlDB, migrationsDir, args...); err != nil {
		return errors.Wrapf(err, "goose %s failed", command)
	}

	return nil
}
