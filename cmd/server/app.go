package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/hero-api/internal/config"
	"github.com/phrazzld/hero-api/internal/platform/postgres"
	"github.com/phrazzld/hero-api/internal/platform/superhero"
	"github.com/phrazzld/hero-api/internal/service"
	"github.com/phrazzld/hero-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	heroStore   store.HeroStore
	heroLookup  service.HeroLookup
	heroService service.HeroService
}

// newApplication creates a new application instance with all dependencies initialized.
// The database connection must be established before calling it.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.heroStore = postgres.NewPostgresHeroStore(db, logger)

	client, err := superhero.NewClient(cfg.Superhero, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize hero directory client: %w", err)
	}
	app.heroLookup = client

	app.heroService, err = service.NewHeroService(app.heroStore, app.heroLookup, db, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize hero service: %w", err)
	}

	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		closeDatabase(app.db, app.logger)
	}
}
