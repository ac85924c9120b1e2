package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHero(t *testing.T) {
	t.Parallel()

	hero, err := NewHero(644, "Superman", 94, 100, 100, 100)
	require.NoError(t, err)
	assert.Equal(t, 644, hero.APIID)
	assert.Equal(t, "Superman", hero.Name)
	assert.Equal(t, 94, hero.Intelligence)
	assert.Equal(t, 100, hero.Strength)
	assert.Equal(t, 100, hero.Speed)
	assert.Equal(t, 100, hero.Power)
	assert.Zero(t, hero.ID, "ID is assigned by the store")
}

func TestHeroValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Hero {
		return &Hero{APIID: 70, Name: "Batman", Intelligence: 100, Strength: 26, Speed: 27, Power: 47}
	}

	tests := []struct {
		name     string
		mutate   func(h *Hero)
		expected error
	}{
		{name: "valid", mutate: func(h *Hero) {}},
		{name: "zero attributes are allowed", mutate: func(h *Hero) {
			h.Intelligence, h.Strength, h.Speed, h.Power = 0, 0, 0, 0
		}},
		{name: "empty name", mutate: func(h *Hero) { h.Name = "" }, expected: ErrHeroNameEmpty},
		{
			name:     "name too long",
			mutate:   func(h *Hero) { h.Name = strings.Repeat("x", MaxHeroNameLength+1) },
			expected: ErrHeroNameTooLong,
		},
		{name: "zero api id", mutate: func(h *Hero) { h.APIID = 0 }, expected: ErrHeroAPIIDInvalid},
		{name: "negative strength", mutate: func(h *Hero) { h.Strength = -1 }, expected: ErrHeroStatNegative},
		{name: "negative power", mutate: func(h *Hero) { h.Power = -5 }, expected: ErrHeroStatNegative},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := valid()
			tc.mutate(h)
			err := h.Validate()

			if tc.expected == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation), "should wrap ErrValidation")
			assert.True(t, errors.Is(err, tc.expected), "expected %v, got %v", tc.expected, err)
		})
	}
}

func TestHeroStat(t *testing.T) {
	t.Parallel()

	h := &Hero{Intelligence: 1, Strength: 2, Speed: 3, Power: 4}
	assert.Equal(t, 1, h.Stat(FieldIntelligence))
	assert.Equal(t, 2, h.Stat(FieldStrength))
	assert.Equal(t, 3, h.Stat(FieldSpeed))
	assert.Equal(t, 4, h.Stat(FieldPower))
	assert.Equal(t, 0, h.Stat(Field("durability")))
}
