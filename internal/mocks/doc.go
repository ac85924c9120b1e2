// Package mocks provides centralized mock implementations for testing.
//
// Each mock exposes one function field per interface method. When a field is
// nil the mock falls back to a simple in-memory default, so tests only set
// the behavior they care about:
//
//	heroes := mocks.NewMockHeroStore()
//	lookup := &mocks.MockHeroLookup{
//	    SearchFn: func(ctx context.Context, name string) (*superhero.SearchResponse, error) {
//	        return nil, errors.New("directory unavailable")
//	    },
//	}
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Record calls where tests need to assert on them
package mocks
