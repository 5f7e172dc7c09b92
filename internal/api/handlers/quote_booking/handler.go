package quote_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/holidaze-gateway/internal/api/handlers"
	quoteBooking "github.com/m04kA/holidaze-gateway/internal/usecase/quote_booking"
)

const (
	msgInvalidRequest = "некорректное тело запроса"
	msgInvalidDates   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidVenueID = "некорректный ID площадки"
	msgNotFound       = "площадка не найдена"
)

type Handler struct {
	useCase QuoteBookingUseCase
	logger  Logger
}

func NewHandler(useCase QuoteBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/venues/{venueId}/quote
// Невалидное предложение возвращается с кодом 200 и valid=false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)["venueId"]

	var body QuoteRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /venues/{id}/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	req, err := body.ToUseCaseRequest(venueID)
	if err != nil {
		handlers.RespondValidationError(w, msgInvalidDates, err)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, quoteBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidVenueID)

		case errors.Is(err, quoteBooking.ErrVenueNotFound):
			h.logger.Warn("POST /venues/{id}/quote - Venue not found: venue_id=%s", venueID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, quoteBooking.ErrUpstreamUnavailable):
			h.logger.Error("POST /venues/{id}/quote - Holidaze unavailable: %v", err)
			handlers.RespondUpstreamUnavailable(w)

		default:
			h.logger.Error("POST /venues/{id}/quote - Failed to quote: venue_id=%s, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /venues/{id}/quote - Quote computed: venue_id=%s, code=%s, nights=%d", venueID, resp.Code, resp.Nights)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
