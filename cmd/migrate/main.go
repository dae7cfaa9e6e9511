package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"catalog/config"
	"catalog/internal/domain/lifecycle"
	logs "catalog/internal/infra/log"
	"catalog/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	command := flag.String("cmd", "up", "goose command: up|up-by-one|down|redo|reset|status|version")
	flag.Parse()

	var (
		cfg    *config.Config
		db     *gorm.DB
		logger *slog.Logger
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		// Migrations run explicitly below, never from the startup hook.
		fx.Decorate(func(cfg *config.Config) *config.Config {
			cfg.Database.AutoMigrate = false

			return cfg
		}),
		fx.Populate(&cfg, &db, &logger),
	)
	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to build migrate app: %v\n", err)
		os.Exit(1)
	}

	startCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := app.Start(startCtx); err != nil {
		logger.Error("Database not reachable", slog.Any("error", err))
		os.Exit(1)
	}

	runErr := postgres.RunMigrations(context.Background(), db, cfg.Database.Driver, *command, flag.Args()...)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil {
		logger.Warn("Failed to close database", slog.Any("error", err))
	}

	if runErr != nil {
		logger.Error("Migration failed", slog.String("cmd", *command), slog.Any("error", runErr))
		os.Exit(1)
	}

	logger.Info("Migration finished", slog.String("cmd", *command))
}
