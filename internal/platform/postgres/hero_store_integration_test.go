//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/phrazzld/hero-api/internal/domain"
	"github.com/phrazzld/hero-api/internal/platform/postgres"
	"github.com/phrazzld/hero-api/internal/store"
	"github.com/phrazzld/hero-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedHeroes(t *testing.T, ctx context.Context, s store.HeroStore) {
	t.Helper()
	for _, h := range []*domain.Hero{
		{APIID: 644, Name: "Superman", Intelligence: 94, Strength: 100, Speed: 100, Power: 100},
		{APIID: 70, Name: "Batman", Intelligence: 100, Strength: 26, Speed: 27, Power: 47},
	} {
		require.NoError(t, s.Create(ctx, h))
		require.NotZero(t, h.ID)
	}
}

func TestPostgresHeroStore_Integration(t *testing.T) {
	db := testdb.GetTestDBWithT(t)
	testdb.SetupTestDatabaseSchema(t, db)
	ctx := context.Background()

	t.Run("exists is case insensitive", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			s := postgres.NewPostgresHeroStore(tx, nil)
			seedHeroes(t, ctx, s)

			exists, err := s.ExistsByName(ctx, "SUPERMAN")
			require.NoError(t, err)
			assert.True(t, exists)

			exists, err = s.ExistsByName(ctx, "Robin")
			require.NoError(t, err)
			assert.False(t, exists)
		})
	})

	t.Run("duplicate name in different case is rejected", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			s := postgres.NewPostgresHeroStore(tx, nil)
			seedHeroes(t, ctx, s)

			err := s.Create(ctx, &domain.Hero{APIID: 9999, Name: "batman"})
			assert.ErrorIs(t, err, store.ErrHeroExists)
		})
	})

	t.Run("duplicate api id is rejected", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			s := postgres.NewPostgresHeroStore(tx, nil)
			seedHeroes(t, ctx, s)

			err := s.Create(ctx, &domain.Hero{APIID: 70, Name: "Bruce Wayne"})
			assert.ErrorIs(t, err, store.ErrHeroExists)
		})
	})

	t.Run("query filters", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			s := postgres.NewPostgresHeroStore(tx, nil)
			seedHeroes(t, ctx, s)

			tests := []struct {
				name  string
				query domain.HeroQuery
				want  []string
			}{
				{"all", domain.HeroQuery{}, []string{"Superman", "Batman"}},
				{"name any case", domain.HeroQuery{Name: "batman"}, []string{"Batman"}},
				{
					"intelligence at least 90",
					domain.HeroQuery{Stats: []domain.StatFilter{{Field: domain.FieldIntelligence, Op: domain.OpGte, Value: 90}}},
					[]string{"Superman", "Batman"},
				},
				{
					"strength at most 50",
					domain.HeroQuery{Stats: []domain.StatFilter{{Field: domain.FieldStrength, Op: domain.OpLte, Value: 50}}},
					[]string{"Batman"},
				},
				{
					"power exactly 100",
					domain.HeroQuery{Stats: []domain.StatFilter{{Field: domain.FieldPower, Op: domain.OpEq, Value: 100}}},
					[]string{"Superman"},
				},
				{
					"at most a value above the integer column range",
					domain.HeroQuery{Stats: []domain.StatFilter{{Field: domain.FieldIntelligence, Op: domain.OpLte, Value: 3000000000}}},
					[]string{"Superman", "Batman"},
				},
				{
					"at least a value above the integer column range",
					domain.HeroQuery{Stats: []domain.StatFilter{{Field: domain.FieldIntelligence, Op: domain.OpGte, Value: 3000000000}}},
					[]string{},
				},
				{
					"no match",
					domain.HeroQuery{Name: "Superman", Stats: []domain.StatFilter{{Field: domain.FieldSpeed, Op: domain.OpLte, Value: 10}}},
					[]string{},
				},
			}

			for _, tc := range tests {
				t.Run(tc.name, func(t *testing.T) {
					heroes, err := s.Query(ctx, tc.query)
					require.NoError(t, err)
					names := make([]string, 0, len(heroes))
					for _, h := range heroes {
						names = append(names, h.Name)
						assert.True(t, tc.query.Matches(h), "row must satisfy the in-memory predicate")
					}
					assert.Equal(t, tc.want, names)
				})
			}
		})
	})

	t.Run("with tx reads uncommitted rows", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			s := postgres.NewPostgresHeroStore(tx, nil)
			seedHeroes(t, ctx, s)

			heroes, err := s.WithTx(tx).Query(ctx, domain.HeroQuery{Name: "Superman"})
			require.NoError(t, err)
			require.Len(t, heroes, 1)
			assert.False(t, heroes[0].CreatedAt.IsZero())
		})
	})
}
