package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/hero-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	assert.NoError(t, MapError(nil))

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", sql.ErrNoRows, store.ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: uniqueViolationCode}, store.ErrDuplicate},
		{"check violation", &pgconn.PgError{Code: checkViolationCode, ConstraintName: "heroes_speed_check"}, store.ErrInvalidEntity},
		{"not null violation", &pgconn.PgError{Code: notNullViolationCode, ColumnName: "name"}, store.ErrInvalidEntity},
		{"wrapped unique violation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: uniqueViolationCode}), store.ErrDuplicate},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, MapError(tc.err), tc.want)
		})
	}

	t.Run("unmapped errors pass through", func(t *testing.T) {
		other := errors.New("network down")
		assert.Same(t, other, MapError(other))

		syntax := &pgconn.PgError{Code: "42601"}
		assert.Equal(t, error(syntax), MapError(syntax))
	})
}

func TestConstraintPredicates(t *testing.T) {
	unique := &pgconn.PgError{Code: uniqueViolationCode}
	check := &pgconn.PgError{Code: checkViolationCode}

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsUniqueViolation(check))
	assert.False(t, IsUniqueViolation(errors.New("23505")))

	assert.True(t, IsCheckConstraintViolation(check))
	assert.False(t, IsCheckConstraintViolation(unique))
}

func TestMapUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "heroes_api_id_key"}

	err := MapUniqueViolation(unique, store.ErrHeroExists)
	assert.ErrorIs(t, err, store.ErrHeroExists)
	assert.Equal(t, "entity already exists: hero: constraint heroes_api_id_key", err.Error())

	other := errors.New("boom")
	assert.Same(t, other, MapUniqueViolation(other, store.ErrHeroExists))
}
