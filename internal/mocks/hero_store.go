package mocks

import (
	"context"
	"database/sql"
	"strings"
	"sync"
	"time"

	"github.com/phrazzld/hero-api/internal/domain"
	"github.com/phrazzld/hero-api/internal/store"
)

// MockHeroStore implements store.HeroStore for testing
type MockHeroStore struct {
	// Function fields for customizable behavior
	ExistsByNameFn func(ctx context.Context, name string) (bool, error)
	CreateFn       func(ctx context.Context, hero *domain.Hero) error
	QueryFn        func(ctx context.Context, q domain.HeroQuery) ([]*domain.Hero, error)

	// Data for default implementation
	mu      sync.Mutex
	Heroes  []*domain.Hero
	Queries []domain.HeroQuery
	TxCalls int
}

// NewMockHeroStore creates a new mock store holding the given heroes
func NewMockHeroStore(heroes ...*domain.Hero) *MockHeroStore {
	m := &MockHeroStore{}
	for _, h := range heroes {
		m.add(h)
	}
	return m
}

var _ store.HeroStore = (*MockHeroStore)(nil)

// ExistsByName implements the HeroStore interface
func (m *MockHeroStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	if m.ExistsByNameFn != nil {
		return m.ExistsByNameFn(ctx, name)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, h := range m.Heroes {
		if strings.EqualFold(h.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

// Create implements the HeroStore interface
func (m *MockHeroStore) Create(ctx context.Context, hero *domain.Hero) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, hero)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, h := range m.Heroes {
		if strings.EqualFold(h.Name, hero.Name) || h.APIID == hero.APIID {
			return store.ErrHeroExists
		}
	}
	m.addLocked(hero)
	return nil
}

// Query implements the HeroStore interface
func (m *MockHeroStore) Query(ctx context.Context, q domain.HeroQuery) ([]*domain.Hero, error) {
	m.mu.Lock()
	m.Queries = append(m.Queries, q)
	m.mu.Unlock()

	if m.QueryFn != nil {
		return m.QueryFn(ctx, q)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Hero, 0)
	for _, h := range m.Heroes {
		if q.Matches(h) {
			out = append(out, h)
		}
	}
	return out, nil
}

// WithTx implements the HeroStore interface. The mock ignores the
// transaction and returns itself.
func (m *MockHeroStore) WithTx(tx *sql.Tx) store.HeroStore {
	m.mu.Lock()
	m.TxCalls++
	m.mu.Unlock()
	return m
}

func (m *MockHeroStore) add(h *domain.Hero) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addLocked(h)
}

func (m *MockHeroStore) addLocked(h *domain.Hero) {
	h.ID = int64(len(m.Heroes) + 1)
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now().UTC()
	}
	m.Heroes = append(m.Heroes, h)
}
