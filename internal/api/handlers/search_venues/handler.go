package search_venues

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/holidaze-gateway/internal/api/handlers"
	"github.com/m04kA/holidaze-gateway/internal/service/venues"
	"github.com/m04kA/holidaze-gateway/internal/service/venues/models"
)

const (
	msgMissingQuery  = "строка поиска обязательна"
	msgInvalidGuests = "некорректное количество гостей"
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

// Handle GET /api/v1/venues/search
// Query params: q (required), guests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.SearchVenuesRequest{Query: r.URL.Query().Get("q")}
	if strings.TrimSpace(req.Query) == "" {
		handlers.RespondBadRequest(w, msgMissingQuery)
		return
	}

	if raw := strings.TrimSpace(r.URL.Query().Get("guests")); raw != "" {
		guests, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /venues/search - Invalid guests: %v", err)
			handlers.RespondBadRequest(w, msgInvalidGuests)
			return
		}
		req.Guests = guests
	}

	result, err := h.service.Search(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, venues.ErrInvalidInput):
			handlers.RespondValidationError(w, msgInvalidGuests, err)

		case errors.Is(err, venues.ErrUpstreamUnavailable):
			h.logger.Error("GET /venues/search - Holidaze unavailable: %v", err)
			handlers.RespondUpstreamUnavailable(w)

		default:
			h.logger.Error("GET /venues/search - Failed to search: q=%s, error=%v", req.Query, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/search - Search completed: q=%s, count=%d", req.Query, result.Count)
	handlers.RespondJSON(w, http.StatusOK, result)
}
