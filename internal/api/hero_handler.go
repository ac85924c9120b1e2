package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/hero-api/internal/api/shared"
	"github.com/phrazzld/hero-api/internal/platform/logger"
	"github.com/phrazzld/hero-api/internal/service"
)

const heroHandlerComponent = "hero_handler"

// HeroHandler handles hero-related HTTP requests
type HeroHandler struct {
	heroService service.HeroService
	logger      *slog.Logger
}

// NewHeroHandler creates a new HeroHandler.
// If logger is nil, a default logger will be used.
func NewHeroHandler(heroService service.HeroService, logger *slog.Logger) *HeroHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HeroHandler{
		heroService: heroService,
		logger:      logger.With(slog.String("component", heroHandlerComponent)),
	}
}

// CreateHero handles POST /hero requests
func (h *HeroHandler) CreateHero(w http.ResponseWriter, r *http.Request) {
	log := logger.ForComponent(r.Context(), h.logger, heroHandlerComponent)

	var req CreateHeroRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("rejected malformed hero request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	if err := req.Validate(); err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}

	hero, err := h.heroService.CreateHero(r.Context(), req.NameString())
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, heroToResponse(hero))
}

// QueryHeroes handles GET /hero requests
func (h *HeroHandler) QueryHeroes(w http.ResponseWriter, r *http.Request) {
	heroes, err := h.heroService.QueryHeroes(r.Context(), queryParamsFromRequest(r))
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, heroesToResponse(heroes))
}

func (h *HeroHandler) respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
