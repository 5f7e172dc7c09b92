package get_manager_venues

import (
	"errors"
	"net/http"

	"github.com/m04kA/holidaze-gateway/internal/api/handlers"
	"github.com/m04kA/holidaze-gateway/internal/api/middleware"
	"github.com/m04kA/holidaze-gateway/internal/service/venues"
)

const (
	msgUnauthorized    = "требуется авторизация"
	msgNotVenueManager = "доступно только менеджерам площадок"
	msgTokenRejected   = "токен Holidaze недействителен, войдите заново"
)

type Handler struct {
	service VenueService
	logger  Logger
}

func NewHandler(service VenueService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/manager/venues
// Площадки менеджера вместе с бронированиями гостей
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.ManagerVenues(r.Context(), session)
	if err != nil {
		switch {
		case errors.Is(err, venues.ErrNotVenueManager):
			handlers.RespondForbidden(w, msgNotVenueManager)

		case errors.Is(err, venues.ErrUnauthorized):
			handlers.RespondUnauthorized(w, msgTokenRejected)

		case errors.Is(err, venues.ErrUpstreamUnavailable):
			h.logger.Error("GET /manager/venues - Holidaze unavailable: %v", err)
			handlers.RespondUpstreamUnavailable(w)

		default:
			h.logger.Error("GET /manager/venues - Failed to get venues: profile=%s, error=%v", session.Profile.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
