package mocks

import (
	"context"

	"github.com/phrazzld/hero-api/internal/domain"
	"github.com/phrazzld/hero-api/internal/service"
)

// MockHeroService implements service.HeroService for testing
type MockHeroService struct {
	CreateHeroFn  func(ctx context.Context, name string) (*domain.Hero, error)
	QueryHeroesFn func(ctx context.Context, params service.QueryParams) ([]*domain.Hero, error)
}

var _ service.HeroService = (*MockHeroService)(nil)

// CreateHero implements the HeroService interface
func (m *MockHeroService) CreateHero(ctx context.Context, name string) (*domain.Hero, error) {
	if m.CreateHeroFn != nil {
		return m.CreateHeroFn(ctx, name)
	}
	return nil, nil
}

// QueryHeroes implements the HeroService interface
func (m *MockHeroService) QueryHeroes(ctx context.Context, params service.QueryParams) ([]*domain.Hero, error) {
	if m.QueryHeroesFn != nil {
		return m.QueryHeroesFn(ctx, params)
	}
	return nil, nil
}
