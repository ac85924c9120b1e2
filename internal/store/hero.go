package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/hero-api/internal/domain"
)

// HeroStore defines the interface for hero persistence.
type HeroStore interface {
	// ExistsByName reports whether a hero with the given name exists,
	// comparing names case-insensitively.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Create inserts a new hero and fills in its ID and CreatedAt.
	// Returns ErrHeroExists if the name or external id is already taken,
	// including when a concurrent create wins the race.
	// Returns ErrInvalidEntity if the hero fails validation.
	Create(ctx context.Context, hero *domain.Hero) error

	// Query returns all heroes matching every condition in q, ordered by
	// primary key. An empty slice is returned when nothing matches.
	Query(ctx context.Context, q domain.HeroQuery) ([]*domain.Hero, error)

	// WithTx returns a HeroStore bound to the provided transaction.
	WithTx(tx *sql.Tx) HeroStore
}
