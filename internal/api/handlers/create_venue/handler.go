package create_venue

import (
	"errors"
	"net/http"

	"github.com/m04kA/holidaze-gateway/internal/api/handlers"
	"github.com/m04kA/holidaze-gateway/internal/api/middleware"
	"github.com/m04kA/holidaze-gateway/internal/service/venues"
	"github.com/m04kA/holidaze-gateway/internal/service/venues/models"
)

const (
	msgUnauthorized    = "требуется авторизация"
	msgInvalidRequest  = "некорректное тело запроса"
	msgInvalidVenue    = "некорректные данные площадки"
	msgNotVenueManager = "доступно только менеджерам площадок"
	msgTokenRejected   = "токен Holidaze недействителен, войдите заново"
	msgRejected        = "Holidaze отклонил площадку"
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

// Handle POST /api/v1/manager/venues
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.VenueRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /manager/venues - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.service.Create(r.Context(), session, &req)
	if err != nil {
		switch {
		case errors.Is(err, venues.ErrInvalidInput):
			handlers.RespondValidationError(w, msgInvalidVenue, err)

		case errors.Is(err, venues.ErrNotVenueManager):
			handlers.RespondForbidden(w, msgNotVenueManager)

		case errors.Is(err, venues.ErrUnauthorized):
			handlers.RespondUnauthorized(w, msgTokenRejected)

		case errors.Is(err, venues.ErrRejected):
			h.logger.Warn("POST /manager/venues - Rejected by Holidaze: profile=%s, error=%v", session.Profile.Name, err)
			handlers.RespondUnprocessable(w, msgRejected, err)

		case errors.Is(err, venues.ErrUpstreamUnavailable):
			h.logger.Error("POST /manager/venues - Holidaze unavailable: %v", err)
			handlers.RespondUpstreamUnavailable(w)

		default:
			h.logger.Error("POST /manager/venues - Failed to create venue: profile=%s, error=%v", session.Profile.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /manager/venues - Venue created: venue_id=%s, profile=%s", result.ID, session.Profile.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
