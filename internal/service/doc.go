// Package service contains the hero use cases: creating a hero from the
// external directory and querying stored heroes with typed filters.
//
// Services receive their dependencies (a store.HeroStore, a HeroLookup and
// the *sql.DB used for transactions) through constructor injection and never
// read configuration or process state themselves.
//
// Error handling:
//   - Expected conditions are returned as sentinel errors (ErrNameRequired,
//     ErrHeroNotFound, ErrHeroExists, ErrNoHeroesFound) or as the typed
//     *InvalidFilterError and *ExternalServiceError
//   - Every service error wraps a domain error kind, so the API layer maps
//     status codes with errors.Is against the domain error kinds
//   - Unexpected failures are wrapped in *HeroServiceError
package service
