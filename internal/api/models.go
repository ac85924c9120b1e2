package api

import (
	"strings"

	"github.com/phrazzld/hero-api/internal/domain"
	"github.com/phrazzld/hero-api/internal/service"
)

// CreateHeroRequest defines the payload for POST /hero.
// Name is decoded loosely so that a non-string value is reported as a
// missing name rather than a malformed body.
type CreateHeroRequest struct {
	Name any `json:"name"`
}

// Validate checks that Name is a non-blank string.
func (r CreateHeroRequest) Validate() error {
	name, ok := r.Name.(string)
	if !ok || strings.TrimSpace(name) == "" {
		return service.ErrNameRequired
	}
	return nil
}

// NameString returns Name if it is a string, or "" otherwise.
func (r CreateHeroRequest) NameString() string {
	name, _ := r.Name.(string)
	return name
}

// HeroResponse is the public representation of a stored hero.
type HeroResponse struct {
	APIID        int    `json:"api_id"`
	Name         string `json:"name"`
	Intelligence int    `json:"intelligence"`
	Strength     int    `json:"strength"`
	Speed        int    `json:"speed"`
	Power        int    `json:"power"`
}

// heroToResponse converts a domain.Hero to a HeroResponse
func heroToResponse(h *domain.Hero) HeroResponse {
	return HeroResponse{
		APIID:        h.APIID,
		Name:         h.Name,
		Intelligence: h.Intelligence,
		Strength:     h.Strength,
		Speed:        h.Speed,
		Power:        h.Power,
	}
}

// heroesToResponse converts a slice of heroes, never returning nil.
func heroesToResponse(heroes []*domain.Hero) []HeroResponse {
	out := make([]HeroResponse, 0, len(heroes))
	for _, h := range heroes {
		out = append(out, heroToResponse(h))
	}
	return out
}
