package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/hero-api/internal/domain"
	"github.com/phrazzld/hero-api/internal/redact"
	"github.com/phrazzld/hero-api/internal/service"
	"github.com/phrazzld/hero-api/internal/store"
)

// Client-facing messages.
const (
	msgNameRequired    = "Name is required"
	msgHeroExists      = "Hero already exists"
	msgHeroNotFound    = "Hero not found"
	msgNoHeroesFound   = "No heroes found matching the criteria"
	msgInvalidValueFor = "Invalid value for "
	msgInvalidRequest  = "Invalid request format"
	msgInvalidHeroData = "Invalid hero data"
	msgUnexpected      = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the domain error kind they wrap.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrExternalService):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the message sent to clients for err.
// Hero directory failures carry their underlying error with credentials
// removed; any other unexpected error gets a generic message.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return msgUnexpected
	}

	var filterErr *service.InvalidFilterError
	var extErr *service.ExternalServiceError

	switch {
	case errors.Is(err, service.ErrNameRequired):
		return msgNameRequired

	case errors.Is(err, service.ErrHeroExists):
		return msgHeroExists

	case errors.Is(err, service.ErrHeroNotFound):
		return msgHeroNotFound

	case errors.Is(err, service.ErrNoHeroesFound):
		return msgNoHeroesFound

	case errors.As(err, &filterErr):
		return msgInvalidValueFor + string(filterErr.Field)

	case errors.As(err, &extErr):
		return redact.Secrets(extErr.Error())

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return msgInvalidHeroData

	default:
		return msgUnexpected
	}
}
