package get_regions

import (
	"errors"
	"net/http"

	"github.com/m04kA/holidaze-gateway/internal/api/handlers"
	"github.com/m04kA/holidaze-gateway/internal/service/venues"
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

// Handle GET /api/v1/venues/regions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Regions(r.Context())
	if err != nil {
		if errors.Is(err, venues.ErrUpstreamUnavailable) {
			h.logger.Error("GET /venues/regions - Holidaze unavailable: %v", err)
			handlers.RespondUpstreamUnavailable(w)
			return
		}
		h.logger.Error("GET /venues/regions - Failed to get regions: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
