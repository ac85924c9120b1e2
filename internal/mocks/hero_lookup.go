package mocks

import (
	"context"
	"strings"
	"sync"

	"github.com/phrazzld/hero-api/internal/platform/superhero"
)

// MockHeroLookup implements service.HeroLookup for testing.
// Without SearchFn it answers from Directory, returning every entry whose
// name contains the search term, the way the real directory does.
type MockHeroLookup struct {
	SearchFn func(ctx context.Context, name string) (*superhero.SearchResponse, error)

	Directory []superhero.Result

	mu       sync.Mutex
	Searches []string
}

// Search implements the HeroLookup interface
func (m *MockHeroLookup) Search(ctx context.Context, name string) (*superhero.SearchResponse, error) {
	m.mu.Lock()
	m.Searches = append(m.Searches, name)
	m.mu.Unlock()

	if m.SearchFn != nil {
		return m.SearchFn(ctx, name)
	}

	var results []superhero.Result
	for _, r := range m.Directory {
		if strings.Contains(strings.ToLower(r.Name), strings.ToLower(name)) {
			results = append(results, r)
		}
	}
	if len(results) == 0 {
		return &superhero.SearchResponse{
			Response: "error",
			Error:    "character with given name not found",
		}, nil
	}
	return &superhero.SearchResponse{
		Response:   superhero.ResponseSuccess,
		ResultsFor: name,
		Results:    results,
	}, nil
}

// DirectoryEntry builds a superhero.Result for use in Directory.
func DirectoryEntry(id int, name string, intelligence, strength, speed, power int) superhero.Result {
	return superhero.Result{
		ID:   superhero.FlexInt(id),
		Name: name,
		Powerstats: superhero.Powerstats{
			Intelligence: superhero.FlexInt(intelligence),
			Strength:     superhero.FlexInt(strength),
			Speed:        superhero.FlexInt(speed),
			Power:        superhero.FlexInt(power),
		},
	}
}
