package main

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/phrazzld/hero-api/internal/platform/postgres"
)

// migrationTimeout bounds a single migration command.
const migrationTimeout = 2 * time.Minute

// runMigrations executes a goose command against the embedded migrations.
func runMigrations(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, migrationTimeout)
	defer cancel()

	logger.Info("executing migrations", slog.String("command", command))
	start := time.Now()

	if err := postgres.Migrate(ctx, db, command, logger); err != nil {
		logger.Error("migrations failed",
			slog.String("command", command),
			slog.String("error", err.Error()))
		return err
	}

	logger.Info("migrations completed",
		slog.String("command", command),
		slog.Duration("duration", time.Since(start)))
	return nil
}
