package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/hero-api/internal/domain"
)

// Service errors. Each wraps one of the domain error kinds so callers can
// branch on the kind with errors.Is, or on the exact condition.
var (
	// ErrNameRequired indicates the create request carried no usable name.
	// API layer should map this to HTTP 400 Bad Request.
	ErrNameRequired = fmt.Errorf("%w: name is required", domain.ErrValidation)

	// ErrHeroNotFound indicates the hero directory has no entry with the
	// requested name. API layer should map this to HTTP 404 Not Found.
	ErrHeroNotFound = fmt.Errorf("%w: hero not found in directory", domain.ErrNotFound)

	// ErrHeroExists indicates a hero with the same name is already stored.
	// API layer should map this to HTTP 400 Bad Request.
	ErrHeroExists = fmt.Errorf("%w: hero already exists", domain.ErrConflict)

	// ErrNoHeroesFound indicates a query matched no stored heroes.
	// API layer should map this to HTTP 404 Not Found.
	ErrNoHeroesFound = fmt.Errorf("%w: no heroes matched the query", domain.ErrNotFound)
)

// InvalidFilterError reports a query filter value that is not a
// non-negative integer.
type InvalidFilterError struct {
	Field domain.Field
	Value string
}

// Error implements the error interface for InvalidFilterError.
func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid value for %s: %q", e.Field, e.Value)
}

// Is reports InvalidFilterError as a validation error.
func (e *InvalidFilterError) Is(target error) bool {
	return target == domain.ErrValidation
}

// ExternalServiceError wraps a failure of the hero directory call.
type ExternalServiceError struct {
	// Operation is the directory call that failed (e.g., "search")
	Operation string
	// Err is the underlying transport, status or decoding error
	Err error
}

// Error implements the error interface for ExternalServiceError.
func (e *ExternalServiceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("hero directory %s failed", e.Operation)
	}
	return fmt.Sprintf("hero directory %s failed: %v", e.Operation, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// Is reports ExternalServiceError as an external service error.
func (e *ExternalServiceError) Is(target error) bool {
	return target == domain.ErrExternalService
}

// HeroServiceError wraps unexpected failures from the hero service with context.
type HeroServiceError struct {
	// Operation is the operation that failed (e.g., "create_hero", "query_heroes")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for HeroServiceError.
func (e *HeroServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("hero service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("hero service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *HeroServiceError) Unwrap() error {
	return e.Err
}

// NewHeroServiceError creates a new HeroServiceError.
// It returns known sentinel errors directly without wrapping.
func NewHeroServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	for _, sentinel := range []error{ErrNameRequired, ErrHeroNotFound, ErrHeroExists, ErrNoHeroesFound} {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}

	var extErr *ExternalServiceError
	if errors.As(err, &extErr) {
		return extErr
	}

	return &HeroServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
