package get_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/holidaze-gateway/internal/api/handlers"
	getAvailability "github.com/m04kA/holidaze-gateway/internal/usecase/get_availability"
)

const (
	msgInvalidDates   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidWindow  = "некорректный период: from позже to или период длиннее года"
	msgInvalidVenueID = "некорректный ID площадки"
	msgNotFound       = "площадка не найдена"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/availability
// Query params: from, to (YYYY-MM-DD, необязательные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)["venueId"]

	req, err := ToUseCaseRequest(venueID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /venues/{id}/availability - Invalid dates: venue_id=%s, error=%v", venueID, err)
		handlers.RespondValidationError(w, msgInvalidDates, err)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidWindow):
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidVenueID)

		case errors.Is(err, getAvailability.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{id}/availability - Venue not found: venue_id=%s", venueID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, getAvailability.ErrUpstreamUnavailable):
			h.logger.Error("GET /venues/{id}/availability - Holidaze unavailable: %v", err)
			handlers.RespondUpstreamUnavailable(w)

		default:
			h.logger.Error("GET /venues/{id}/availability - Failed to build calendar: venue_id=%s, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
