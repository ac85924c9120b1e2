package service_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phrazzld/hero-api/internal/domain"
	"github.com/phrazzld/hero-api/internal/mocks"
	"github.com/phrazzld/hero-api/internal/platform/superhero"
	"github.com/phrazzld/hero-api/internal/service"
	"github.com/phrazzld/hero-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func newDirectory() *mocks.MockHeroLookup {
	return &mocks.MockHeroLookup{
		Directory: []superhero.Result{
			mocks.DirectoryEntry(644, "Superman", 94, 100, 100, 100),
			mocks.DirectoryEntry(69, "Batman", 81, 40, 29, 63),
			mocks.DirectoryEntry(70, "Batman", 100, 26, 27, 47),
			mocks.DirectoryEntry(71, "Batman II", 0, 0, 0, 0),
		},
	}
}

func TestNewHeroService(t *testing.T) {
	db, _ := newTestDB(t)
	heroes := mocks.NewMockHeroStore()
	lookup := newDirectory()

	tests := []struct {
		name   string
		heroes store.HeroStore
		lookup service.HeroLookup
		db     *sql.DB
	}{
		{"nil store", nil, lookup, db},
		{"nil lookup", heroes, nil, db},
		{"nil db", heroes, lookup, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, err := service.NewHeroService(tc.heroes, tc.lookup, tc.db, nil)
			assert.Error(t, err)
			assert.Nil(t, svc)
			var svcErr *service.HeroServiceError
			assert.ErrorAs(t, err, &svcErr)
		})
	}

	svc, err := service.NewHeroService(heroes, lookup, db, nil)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestHeroService_CreateHero(t *testing.T) {
	ctx := context.Background()

	t.Run("creates hero from directory", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		heroes := mocks.NewMockHeroStore()
		lookup := newDirectory()
		svc, err := service.NewHeroService(heroes, lookup, db, nil)
		require.NoError(t, err)

		hero, err := svc.CreateHero(ctx, "  superman ")
		require.NoError(t, err)
		assert.Equal(t, 644, hero.APIID)
		assert.Equal(t, "Superman", hero.Name, "stored name comes from the directory")
		assert.Equal(t, 94, hero.Intelligence)
		assert.Equal(t, 100, hero.Strength)
		assert.Equal(t, 100, hero.Speed)
		assert.Equal(t, 100, hero.Power)

		assert.Equal(t, []string{"superman"}, lookup.Searches, "lookup uses the trimmed name")
		assert.Len(t, heroes.Heroes, 1)
		assert.Equal(t, 1, heroes.TxCalls)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("first case-insensitive match wins", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		svc, err := service.NewHeroService(mocks.NewMockHeroStore(), newDirectory(), db, nil)
		require.NoError(t, err)

		hero, err := svc.CreateHero(ctx, "BATMAN")
		require.NoError(t, err)
		assert.Equal(t, 69, hero.APIID)
		assert.Equal(t, 81, hero.Intelligence)
	})

	t.Run("null powerstats are stored as zero", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		svc, err := service.NewHeroService(mocks.NewMockHeroStore(), newDirectory(), db, nil)
		require.NoError(t, err)

		hero, err := svc.CreateHero(ctx, "Batman II")
		require.NoError(t, err)
		assert.Equal(t, 71, hero.APIID)
		assert.Zero(t, hero.Intelligence+hero.Strength+hero.Speed+hero.Power)
	})

	t.Run("blank names are rejected before lookup", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		lookup := newDirectory()
		svc, err := service.NewHeroService(mocks.NewMockHeroStore(), lookup, db, nil)
		require.NoError(t, err)

		for _, name := range []string{"", "   ", "\t\n"} {
			hero, err := svc.CreateHero(ctx, name)
			assert.Nil(t, hero)
			assert.ErrorIs(t, err, service.ErrNameRequired)
			assert.ErrorIs(t, err, domain.ErrValidation)
		}
		assert.Empty(t, lookup.Searches)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("directory entry without id is rejected before the transaction", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		heroes := mocks.NewMockHeroStore()
		lookup := &mocks.MockHeroLookup{
			Directory: []superhero.Result{mocks.DirectoryEntry(0, "Nameless", 1, 1, 1, 1)},
		}
		svc, err := service.NewHeroService(heroes, lookup, db, nil)
		require.NoError(t, err)

		hero, err := svc.CreateHero(ctx, "Nameless")
		assert.Nil(t, hero)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.ErrorIs(t, err, domain.ErrHeroAPIIDInvalid)
		assert.Empty(t, heroes.Heroes)
		assert.Zero(t, heroes.TxCalls)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("directory reports no results", func(t *testing.T) {
		db, _ := newTestDB(t)
		heroes := mocks.NewMockHeroStore()
		svc, err := service.NewHeroService(heroes, newDirectory(), db, nil)
		require.NoError(t, err)

		_, err = svc.CreateHero(ctx, "Nobody")
		assert.ErrorIs(t, err, service.ErrHeroNotFound)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Empty(t, heroes.Heroes)
	})

	t.Run("success response with empty results", func(t *testing.T) {
		db, _ := newTestDB(t)
		lookup := &mocks.MockHeroLookup{
			SearchFn: func(ctx context.Context, name string) (*superhero.SearchResponse, error) {
				return &superhero.SearchResponse{Response: superhero.ResponseSuccess}, nil
			},
		}
		svc, err := service.NewHeroService(mocks.NewMockHeroStore(), lookup, db, nil)
		require.NoError(t, err)

		_, err = svc.CreateHero(ctx, "Superman")
		assert.ErrorIs(t, err, service.ErrHeroNotFound)
	})

	t.Run("partial name matches are not accepted", func(t *testing.T) {
		db, _ := newTestDB(t)
		svc, err := service.NewHeroService(mocks.NewMockHeroStore(), newDirectory(), db, nil)
		require.NoError(t, err)

		_, err = svc.CreateHero(ctx, "Bat")
		assert.ErrorIs(t, err, service.ErrHeroNotFound)
	})

	t.Run("existing name in any case is a conflict", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		dbMock.ExpectBegin()
		dbMock.ExpectRollback()

		existing := &domain.Hero{APIID: 644, Name: "Superman", Intelligence: 94, Strength: 100, Speed: 100, Power: 100}
		heroes := mocks.NewMockHeroStore(existing)
		svc, err := service.NewHeroService(heroes, newDirectory(), db, nil)
		require.NoError(t, err)

		hero, err := svc.CreateHero(ctx, "SUPERMAN")
		assert.Nil(t, hero)
		assert.ErrorIs(t, err, service.ErrHeroExists)
		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.Len(t, heroes.Heroes, 1)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("insert race is a conflict", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		dbMock.ExpectBegin()
		dbMock.ExpectRollback()

		heroes := mocks.NewMockHeroStore()
		heroes.CreateFn = func(ctx context.Context, hero *domain.Hero) error {
			return fmt.Errorf("%w: constraint heroes_name_lower_key", store.ErrHeroExists)
		}
		svc, err := service.NewHeroService(heroes, newDirectory(), db, nil)
		require.NoError(t, err)

		_, err = svc.CreateHero(ctx, "Superman")
		assert.ErrorIs(t, err, service.ErrHeroExists)
	})

	t.Run("lookup failure is an external service error", func(t *testing.T) {
		db, _ := newTestDB(t)
		cause := &url.Error{Op: "Get", URL: "https://superheroapi.com/api/[REDACTED_TOKEN]/search/Superman",
			Err: errors.New("connection refused")}
		lookup := &mocks.MockHeroLookup{
			SearchFn: func(ctx context.Context, name string) (*superhero.SearchResponse, error) {
				return nil, cause
			},
		}
		heroes := mocks.NewMockHeroStore()
		svc, err := service.NewHeroService(heroes, lookup, db, nil)
		require.NoError(t, err)

		_, err = svc.CreateHero(ctx, "Superman")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrExternalService)

		var extErr *service.ExternalServiceError
		require.ErrorAs(t, err, &extErr)
		assert.Equal(t, "search", extErr.Operation)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "connection refused")
		assert.Empty(t, heroes.Heroes)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		dbMock.ExpectBegin()
		dbMock.ExpectRollback()

		dbErr := errors.New("disk full")
		heroes := mocks.NewMockHeroStore()
		heroes.CreateFn = func(ctx context.Context, hero *domain.Hero) error { return dbErr }
		svc, err := service.NewHeroService(heroes, newDirectory(), db, nil)
		require.NoError(t, err)

		_, err = svc.CreateHero(ctx, "Superman")
		assert.ErrorIs(t, err, dbErr)
		var svcErr *service.HeroServiceError
		assert.ErrorAs(t, err, &svcErr)
		assert.NotErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("begin failure is wrapped", func(t *testing.T) {
		db, dbMock := newTestDB(t)
		dbMock.ExpectBegin().WillReturnError(errors.New("too many connections"))

		svc, err := service.NewHeroService(mocks.NewMockHeroStore(), newDirectory(), db, nil)
		require.NoError(t, err)

		_, err = svc.CreateHero(ctx, "Superman")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "too many connections")
	})
}

func TestHeroService_QueryHeroes(t *testing.T) {
	ctx := context.Background()
	db, _ := newTestDB(t)

	newService := func(t *testing.T) (service.HeroService, *mocks.MockHeroStore) {
		heroes := mocks.NewMockHeroStore(
			&domain.Hero{APIID: 644, Name: "Superman", Intelligence: 94, Strength: 100, Speed: 100, Power: 100},
			&domain.Hero{APIID: 70, Name: "Batman", Intelligence: 100, Strength: 26, Speed: 27, Power: 47},
		)
		svc, err := service.NewHeroService(heroes, newDirectory(), db, nil)
		require.NoError(t, err)
		return svc, heroes
	}

	stats := func(pairs ...any) map[domain.Field]service.StatParam {
		out := make(map[domain.Field]service.StatParam)
		for i := 0; i < len(pairs); i += 3 {
			out[pairs[i].(domain.Field)] = service.StatParam{Value: pairs[i+1].(string), Op: pairs[i+2].(string)}
		}
		return out
	}

	tests := []struct {
		name   string
		params service.QueryParams
		want   []string
	}{
		{"no filters returns everything", service.QueryParams{}, []string{"Superman", "Batman"}},
		{"name is case-insensitive", service.QueryParams{Name: "batman"}, []string{"Batman"}},
		{"gte", service.QueryParams{Stats: stats(domain.FieldIntelligence, "90", "gte")}, []string{"Superman", "Batman"}},
		{"lte", service.QueryParams{Stats: stats(domain.FieldStrength, "50", "lte")}, []string{"Batman"}},
		{"default operator is eq", service.QueryParams{Stats: stats(domain.FieldPower, "100", "")}, []string{"Superman"}},
		{"unknown operator falls back to eq", service.QueryParams{Stats: stats(domain.FieldSpeed, "27", "gt")}, []string{"Batman"}},
		{"empty value is ignored", service.QueryParams{Stats: stats(domain.FieldSpeed, "", "gte")}, []string{"Superman", "Batman"}},
		{
			"filters combine with AND",
			service.QueryParams{Name: "Superman", Stats: stats(domain.FieldIntelligence, "90", "gte", domain.FieldSpeed, "100", "eq")},
			[]string{"Superman"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newService(t)
			heroes, err := svc.QueryHeroes(ctx, tc.params)
			require.NoError(t, err)
			names := make([]string, 0, len(heroes))
			for _, h := range heroes {
				names = append(names, h.Name)
			}
			assert.Equal(t, tc.want, names)
		})
	}

	t.Run("no matches", func(t *testing.T) {
		svc, _ := newService(t)
		heroes, err := svc.QueryHeroes(ctx, service.QueryParams{Name: "Robin"})
		assert.Nil(t, heroes)
		assert.ErrorIs(t, err, service.ErrNoHeroesFound)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("invalid value never reaches the store", func(t *testing.T) {
		svc, heroes := newService(t)
		_, err := svc.QueryHeroes(ctx, service.QueryParams{Stats: stats(domain.FieldSpeed, "fast", "eq")})

		var filterErr *service.InvalidFilterError
		require.ErrorAs(t, err, &filterErr)
		assert.Equal(t, domain.FieldSpeed, filterErr.Field)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Empty(t, heroes.Queries)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		svc, heroes := newService(t)
		dbErr := errors.New("connection reset")
		heroes.QueryFn = func(ctx context.Context, q domain.HeroQuery) ([]*domain.Hero, error) { return nil, dbErr }

		_, err := svc.QueryHeroes(ctx, service.QueryParams{})
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestParseHeroQuery(t *testing.T) {
	t.Run("first invalid attribute in fixed order is reported", func(t *testing.T) {
		_, err := service.ParseHeroQuery(service.QueryParams{Stats: map[domain.Field]service.StatParam{
			domain.FieldPower:    {Value: "-1"},
			domain.FieldStrength: {Value: "abc"},
			domain.FieldSpeed:    {Value: "1.5"},
		}})

		var filterErr *service.InvalidFilterError
		require.ErrorAs(t, err, &filterErr)
		assert.Equal(t, domain.FieldStrength, filterErr.Field)
		assert.Equal(t, "abc", filterErr.Value)
	})

	for _, bad := range []string{"-1", "abc", "1.5", "1e3", "9999999999999999999999"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			_, err := service.ParseHeroQuery(service.QueryParams{Stats: map[domain.Field]service.StatParam{
				domain.FieldIntelligence: {Value: bad},
			}})
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	t.Run("accepts values above the integer column range", func(t *testing.T) {
		q, err := service.ParseHeroQuery(service.QueryParams{Stats: map[domain.Field]service.StatParam{
			domain.FieldIntelligence: {Value: "3000000000", Op: "lte"},
		}})
		require.NoError(t, err)
		assert.Equal(t, []domain.StatFilter{
			{Field: domain.FieldIntelligence, Op: domain.OpLte, Value: 3000000000},
		}, q.Stats)
	})

	t.Run("builds filters in attribute order", func(t *testing.T) {
		q, err := service.ParseHeroQuery(service.QueryParams{
			Name: "Batman",
			Stats: map[domain.Field]service.StatParam{
				domain.FieldPower:        {Value: "47", Op: "LTE"},
				domain.FieldIntelligence: {Value: " 90 ", Op: "gte"},
				domain.FieldSpeed:        {Value: "0", Op: "bogus"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "Batman", q.Name)
		assert.Equal(t, []domain.StatFilter{
			{Field: domain.FieldIntelligence, Op: domain.OpGte, Value: 90},
			{Field: domain.FieldSpeed, Op: domain.OpEq, Value: 0},
			{Field: domain.FieldPower, Op: domain.OpLte, Value: 47},
		}, q.Stats)
	})
}
