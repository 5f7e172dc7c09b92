package list_venues

import (
	"errors"
	"net/http"

	"github.com/m04kA/holidaze-gateway/internal/api/handlers"
	"github.com/m04kA/holidaze-gateway/internal/service/venues"
)

const (
	msgInvalidQuery = "некорректные параметры запроса"
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

// Handle GET /api/v1/venues
// Query params: page, limit (1..100), region (континент или "All"), guests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ToServiceRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /venues - Invalid query: %v", err)
		handlers.RespondValidationError(w, msgInvalidQuery, err)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, venues.ErrInvalidInput):
			handlers.RespondValidationError(w, msgInvalidQuery, err)

		case errors.Is(err, venues.ErrUpstreamUnavailable):
			h.logger.Error("GET /venues - Holidaze unavailable: %v", err)
			handlers.RespondUpstreamUnavailable(w)

		default:
			h.logger.Error("GET /venues - Failed to list venues: page=%d, error=%v", req.Page, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues - Venues listed: page=%d, region=%s, guests=%d, count=%d",
		result.Page, req.Region, req.Guests, result.Count)
	handlers.RespondJSON(w, http.StatusOK, result)
}
