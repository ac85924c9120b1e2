package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/phrazzld/hero-api/internal/domain"
	"github.com/phrazzld/hero-api/internal/platform/logger"
	"github.com/phrazzld/hero-api/internal/platform/superhero"
	"github.com/phrazzld/hero-api/internal/store"
)

const heroServiceComponent = "hero_service"

// HeroLookup searches the external hero directory by name.
// *superhero.Client implements it.
type HeroLookup interface {
	Search(ctx context.Context, name string) (*superhero.SearchResponse, error)
}

// StatParam is the raw value and operator supplied for one attribute.
type StatParam struct {
	Value string
	Op    string
}

// QueryParams carries the raw, unvalidated query inputs.
type QueryParams struct {
	Name  string
	Stats map[domain.Field]StatParam
}

// HeroService provides hero-related operations
type HeroService interface {
	// CreateHero looks name up in the external directory and stores the first
	// entry whose name matches it case-insensitively.
	CreateHero(ctx context.Context, name string) (*domain.Hero, error)

	// QueryHeroes returns stored heroes matching every supplied filter.
	QueryHeroes(ctx context.Context, params QueryParams) ([]*domain.Hero, error)
}

// heroServiceImpl implements the HeroService interface
type heroServiceImpl struct {
	heroes store.HeroStore
	lookup HeroLookup
	db     *sql.DB
	logger *slog.Logger
}

// NewHeroService creates a new HeroService.
// It returns an error if any of the required dependencies are nil.
func NewHeroService(
	heroes store.HeroStore,
	lookup HeroLookup,
	db *sql.DB,
	logger *slog.Logger,
) (HeroService, error) {
	if heroes == nil {
		return nil, &HeroServiceError{Operation: "create_service", Message: "hero store cannot be nil"}
	}
	if lookup == nil {
		return nil, &HeroServiceError{Operation: "create_service", Message: "hero lookup cannot be nil"}
	}
	if db == nil {
		return nil, &HeroServiceError{Operation: "create_service", Message: "db cannot be nil"}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &heroServiceImpl{
		heroes: heroes,
		lookup: lookup,
		db:     db,
		logger: logger.With(slog.String("component", heroServiceComponent)),
	}, nil
}

// CreateHero implements HeroService.CreateHero
func (s *heroServiceImpl) CreateHero(ctx context.Context, name string) (*domain.Hero, error) {
	log := logger.ForComponent(ctx, s.logger, heroServiceComponent)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	resp, err := s.lookup.Search(ctx, name)
	if err != nil {
		log.Error("hero directory lookup failed", slog.String("name", name))
		return nil, &ExternalServiceError{Operation: "search", Err: err}
	}

	if !resp.Succeeded() || len(resp.Results) == 0 {
		log.Info("hero not found in directory",
			slog.String("name", name),
			slog.String("directory_error", resp.Error))
		return nil, ErrHeroNotFound
	}

	match, ok := resp.FirstMatch(name)
	if !ok {
		log.Info("no exact directory match",
			slog.String("name", name),
			slog.Int("candidates", len(resp.Results)))
		return nil, ErrHeroNotFound
	}

	hero, err := domain.NewHero(
		match.ID.Int(),
		match.Name,
		match.Powerstats.Intelligence.Int(),
		match.Powerstats.Strength.Int(),
		match.Powerstats.Speed.Int(),
		match.Powerstats.Power.Int(),
	)
	if err != nil {
		log.Warn("directory entry failed validation",
			slog.Int("api_id", match.ID.Int()),
			slog.String("error", err.Error()))
		return nil, NewHeroServiceError("create_hero", "directory entry failed validation", err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.heroes.WithTx(tx)

		exists, err := txStore.ExistsByName(ctx, name)
		if err != nil {
			return NewHeroServiceError("create_hero", "failed to check for existing hero", err)
		}
		if exists {
			return ErrHeroExists
		}

		if err := txStore.Create(ctx, hero); err != nil {
			if store.IsDuplicateError(err) {
				return ErrHeroExists
			}
			return NewHeroServiceError("create_hero", "failed to save hero", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrHeroExists) {
			log.Info("hero already exists", slog.String("name", name))
		} else {
			log.Error("failed to create hero",
				slog.String("name", name),
				slog.String("error", err.Error()))
		}
		return nil, NewHeroServiceError("create_hero", "failed to create hero", err)
	}

	log.Info("hero created",
		slog.Int("api_id", hero.APIID),
		slog.String("name", hero.Name))
	return hero, nil
}

// QueryHeroes implements HeroService.QueryHeroes
func (s *heroServiceImpl) QueryHeroes(ctx context.Context, params QueryParams) ([]*domain.Hero, error) {
	log := logger.ForComponent(ctx, s.logger, heroServiceComponent)

	q, err := ParseHeroQuery(params)
	if err != nil {
		log.Info("rejected hero query", slog.String("error", err.Error()))
		return nil, err
	}

	heroes, err := s.heroes.Query(ctx, q)
	if err != nil {
		log.Error("failed to query heroes", slog.String("error", err.Error()))
		return nil, NewHeroServiceError("query_heroes", "failed to query heroes", err)
	}

	if len(heroes) == 0 {
		return nil, ErrNoHeroesFound
	}

	log.Debug("hero query matched", slog.Int("count", len(heroes)))
	return heroes, nil
}

// ParseHeroQuery validates raw query inputs into a domain.HeroQuery.
// Empty values are treated as absent. Attributes are checked in
// domain.StatFields order and the first invalid one is reported as an
// *InvalidFilterError.
func ParseHeroQuery(params QueryParams) (domain.HeroQuery, error) {
	q := domain.HeroQuery{Name: params.Name}

	for _, field := range domain.StatFields {
		param, ok := params.Stats[field]
		if !ok || param.Value == "" {
			continue
		}

		value, err := strconv.Atoi(strings.TrimSpace(param.Value))
		if err != nil || value < 0 {
			return domain.HeroQuery{}, &InvalidFilterError{Field: field, Value: param.Value}
		}

		q.Stats = append(q.Stats, domain.StatFilter{
			Field: field,
			Op:    domain.ParseOperator(param.Op),
			Value: value,
		})
	}

	return q, nil
}
