package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/hero-api/internal/domain"
	"github.com/phrazzld/hero-api/internal/platform/logger"
	"github.com/phrazzld/hero-api/internal/store"
)

const heroStoreComponent = "hero_store"

// ErrUnsupportedFilter is returned when a filter names a field or operator
// that has no SQL translation.
var ErrUnsupportedFilter = errors.New("unsupported hero filter")

const selectHeroColumns = `SELECT id, api_id, name, intelligence, strength, speed, power, created_at FROM heroes`

// PostgresHeroStore implements the store.HeroStore interface
// using a PostgreSQL database as the storage backend.
type PostgresHeroStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresHeroStore creates a new PostgreSQL implementation of the HeroStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresHeroStore(db store.DBTX, logger *slog.Logger) *PostgresHeroStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresHeroStore{
		db:     db,
		logger: logger.With(slog.String("component", heroStoreComponent)),
	}
}

// Ensure PostgresHeroStore implements store.HeroStore interface
var _ store.HeroStore = (*PostgresHeroStore)(nil)

// WithTx implements store.HeroStore.WithTx
func (s *PostgresHeroStore) WithTx(tx *sql.Tx) store.HeroStore {
	return &PostgresHeroStore{
		db:     tx,
		logger: s.logger,
	}
}

// ExistsByName implements store.HeroStore.ExistsByName
func (s *PostgresHeroStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	log := logger.ForComponent(ctx, s.logger, heroStoreComponent)

	query := `SELECT EXISTS (SELECT 1 FROM heroes WHERE LOWER(name) = LOWER($1))`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, name).Scan(&exists); err != nil {
		log.Error("failed to check hero existence",
			slog.String("error", err.Error()),
			slog.String("name", name))
		return false, store.NewStoreError("hero", "exists", "failed to check existence", MapError(err))
	}

	log.Debug("checked hero existence", slog.String("name", name), slog.Bool("exists", exists))
	return exists, nil
}

// Create implements store.HeroStore.Create
func (s *PostgresHeroStore) Create(ctx context.Context, hero *domain.Hero) error {
	log := logger.ForComponent(ctx, s.logger, heroStoreComponent)

	if err := hero.Validate(); err != nil {
		log.Warn("hero validation failed during create",
			slog.String("error", err.Error()),
			slog.Int("api_id", hero.APIID))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO heroes (api_id, name, intelligence, strength, speed, power)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		hero.APIID,
		hero.Name,
		hero.Intelligence,
		hero.Strength,
		hero.Speed,
		hero.Power,
	).Scan(&hero.ID, &hero.CreatedAt)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("hero already exists",
				slog.String("name", hero.Name),
				slog.Int("api_id", hero.APIID))
			return MapUniqueViolation(err, store.ErrHeroExists)
		}

		if IsCheckConstraintViolation(err) {
			log.Warn("hero rejected by check constraint",
				slog.String("error", err.Error()),
				slog.Int("api_id", hero.APIID))
			return store.NewStoreError("hero", "create", "hero violates table constraints", MapError(err))
		}

		log.Error("failed to create hero",
			slog.String("error", err.Error()),
			slog.String("name", hero.Name),
			slog.Int("api_id", hero.APIID))
		return store.NewStoreError("hero", "create", "failed to insert hero", MapError(err))
	}

	log.Info("hero created successfully",
		slog.Int64("hero_id", hero.ID),
		slog.Int("api_id", hero.APIID),
		slog.String("name", hero.Name))
	return nil
}

// Query implements store.HeroStore.Query
func (s *PostgresHeroStore) Query(ctx context.Context, q domain.HeroQuery) ([]*domain.Hero, error) {
	log := logger.ForComponent(ctx, s.logger, heroStoreComponent)

	query, args, err := buildHeroQuery(q)
	if err != nil {
		log.Warn("rejected hero query", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("querying heroes",
		slog.String("name", q.Name),
		slog.Int("stat_filters", len(q.Stats)))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query heroes", slog.String("error", err.Error()))
		return nil, store.NewStoreError("hero", "query", "failed to execute query", MapError(err))
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Error("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	heroes := make([]*domain.Hero, 0)
	for rows.Next() {
		var h domain.Hero
		if err := rows.Scan(
			&h.ID,
			&h.APIID,
			&h.Name,
			&h.Intelligence,
			&h.Strength,
			&h.Speed,
			&h.Power,
			&h.CreatedAt,
		); err != nil {
			log.Error("failed to scan hero row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("hero", "query", "failed to scan row", err)
		}
		heroes = append(heroes, &h)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating hero rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("hero", "query", "failed to iterate rows", MapError(err))
	}

	log.Debug("hero query completed", slog.Int("count", len(heroes)))
	return heroes, nil
}

// buildHeroQuery translates a HeroQuery into a parameterized SELECT.
// Column names and operators come only from closed switches, so no caller
// supplied text reaches the SQL string.
func buildHeroQuery(q domain.HeroQuery) (string, []any, error) {
	conditions := make([]string, 0, len(q.Stats)+1)
	args := make([]any, 0, len(q.Stats)+1)

	if q.Name != "" {
		args = append(args, q.Name)
		conditions = append(conditions, fmt.Sprintf("LOWER(name) = LOWER($%d)", len(args)))
	}

	for _, f := range q.Stats {
		column, err := statColumn(f.Field)
		if err != nil {
			return "", nil, err
		}
		op, err := sqlOperator(f.Op)
		if err != nil {
			return "", nil, err
		}
		// Values may exceed the INTEGER column range.
		args = append(args, f.Value)
		conditions = append(conditions, fmt.Sprintf("%s %s $%d::bigint", column, op, len(args)))
	}

	var sb strings.Builder
	sb.WriteString(selectHeroColumns)
	if len(conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}
	sb.WriteString(" ORDER BY id")

	return sb.String(), args, nil
}

// statColumn relies on Field values matching the heroes column names.
func statColumn(field domain.Field) (string, error) {
	if !field.Valid() {
		return "", fmt.Errorf("%w: field %q", ErrUnsupportedFilter, field)
	}
	return string(field), nil
}

func sqlOperator(op domain.Operator) (string, error) {
	switch op {
	case domain.OpEq:
		return "=", nil
	case domain.OpLte:
		return "<=", nil
	case domain.OpGte:
		return ">=", nil
	default:
		return "", fmt.Errorf("%w: operator %q", ErrUnsupportedFilter, op)
	}
}
