// Package domain defines the core business entities and errors.
package domain

import "errors"

// Error kinds shared across layers. Concrete errors wrap one of these so the
// API layer can map them to a status code with errors.Is.
var (
	// ErrValidation is returned when input or an entity fails validation.
	ErrValidation = errors.New("validation failed")

	// ErrConflict is returned when an operation would break a uniqueness rule.
	ErrConflict = errors.New("conflict")

	// ErrNotFound is returned when nothing matches a lookup or query.
	ErrNotFound = errors.New("not found")

	// ErrExternalService is returned when the external hero directory fails.
	ErrExternalService = errors.New("external service error")
)

// Hero validation errors
var (
	ErrHeroNameEmpty     = errors.New("hero name cannot be empty")
	ErrHeroNameTooLong   = errors.New("hero name is too long")
	ErrHeroAPIIDInvalid  = errors.New("hero api id must be positive")
	ErrHeroStatNegative  = errors.New("hero attributes cannot be negative")
	ErrInvalidHeroEntity = errors.New("invalid hero")
)
