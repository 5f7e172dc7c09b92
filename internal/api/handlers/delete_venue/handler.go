package delete_venue

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/holidaze-gateway/internal/api/handlers"
	"github.com/m04kA/holidaze-gateway/internal/api/middleware"
	"github.com/m04kA/holidaze-gateway/internal/service/venues"
)

const (
	msgUnauthorized    = "требуется авторизация"
	msgInvalidVenueID  = "некорректный ID площадки"
	msgNotVenueManager = "доступно только менеджерам площадок"
	msgNotOwner        = "площадка принадлежит другому менеджеру"
	msgNotFound        = "площадка не найдена"
	msgTokenRejected   = "токен Holidaze недействителен, войдите заново"
	msgRejected        = "Holidaze отклонил удаление"
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

// Handle DELETE /api/v1/manager/venues/{venueId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	venueID := mux.Vars(r)["venueId"]

	if err := h.service.Delete(r.Context(), session, venueID); err != nil {
		switch {
		case errors.Is(err, venues.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidVenueID)

		case errors.Is(err, venues.ErrNotVenueManager):
			handlers.RespondForbidden(w, msgNotVenueManager)

		case errors.Is(err, venues.ErrNotOwner):
			h.logger.Warn("DELETE /manager/venues/{id} - Not owner: venue_id=%s, profile=%s", venueID, session.Profile.Name)
			handlers.RespondForbidden(w, msgNotOwner)

		case errors.Is(err, venues.ErrVenueNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, venues.ErrUnauthorized):
			handlers.RespondUnauthorized(w, msgTokenRejected)

		case errors.Is(err, venues.ErrRejected):
			handlers.RespondUnprocessable(w, msgRejected, err)

		case errors.Is(err, venues.ErrUpstreamUnavailable):
			h.logger.Error("DELETE /manager/venues/{id} - Holidaze unavailable: %v", err)
			handlers.RespondUpstreamUnavailable(w)

		default:
			h.logger.Error("DELETE /manager/venues/{id} - Failed to delete venue: venue_id=%s, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /manager/venues/{id} - Venue deleted: venue_id=%s, profile=%s", venueID, session.Profile.Name)
	w.WriteHeader(http.StatusNoContent)
}
