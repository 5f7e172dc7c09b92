package get_venue

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/holidaze-gateway/internal/api/handlers"
	"github.com/m04kA/holidaze-gateway/internal/service/venues"
)

const (
	msgInvalidVenueID = "некорректный ID площадки"
	msgNotFound       = "площадка не найдена"
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

// Handle GET /api/v1/venues/{venueId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)["venueId"]

	result, err := h.service.Get(r.Context(), venueID)
	if err != nil {
		switch {
		case errors.Is(err, venues.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidVenueID)

		case errors.Is(err, venues.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{id} - Venue not found: venue_id=%s", venueID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, venues.ErrUpstreamUnavailable):
			h.logger.Error("GET /venues/{id} - Holidaze unavailable: %v", err)
			handlers.RespondUpstreamUnavailable(w)

		default:
			h.logger.Error("GET /venues/{id} - Failed to get venue: venue_id=%s, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
