package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/holidaze-gateway/internal/api/handlers"
	"github.com/m04kA/holidaze-gateway/internal/api/middleware"
	"github.com/m04kA/holidaze-gateway/internal/availability"
	createBooking "github.com/m04kA/holidaze-gateway/internal/usecase/create_booking"
)

const (
	msgUnauthorized     = "требуется авторизация"
	msgInvalidRequest   = "некорректное тело запроса"
	msgInvalidDates     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput     = "не указана площадка"
	msgInvalidProposal  = "бронирование не прошло проверку"
	msgDatesUnavailable = "выбранные даты уже заняты"
	msgDateInPast       = "дата заезда не может быть в прошлом"
	msgVenueNotFound    = "площадка не найдена"
	msgTokenRejected    = "токен Holidaze недействителен, войдите заново"
	msgRejected         = "Holidaze отклонил бронирование"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var body CreateBookingRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	req, err := body.ToUseCaseRequest(session)
	if err != nil {
		handlers.RespondValidationError(w, msgInvalidDates, err)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrDateRangeConflict):
			handlers.RespondConflict(w, msgDatesUnavailable)

		case errors.Is(err, createBooking.ErrInvalidProposal):
			handlers.RespondValidationError(w, msgInvalidProposal, err)

		case errors.Is(err, createBooking.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrVenueNotFound):
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, createBooking.ErrUnauthorized):
			handlers.RespondUnauthorized(w, msgTokenRejected)

		case errors.Is(err, createBooking.ErrRejected):
			h.logger.Warn("POST /bookings - Rejected by Holidaze: profile=%s, error=%v", session.Profile.Name, err)
			handlers.RespondUnprocessable(w, msgRejected, err)

		case errors.Is(err, createBooking.ErrUpstreamUnavailable):
			h.logger.Error("POST /bookings - Holidaze unavailable: %v", err)
			handlers.RespondUpstreamUnavailable(w)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: profile=%s, error=%v", session.Profile.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%s, venue_id=%s, profile=%s",
		resp.ID, resp.VenueID, session.Profile.Name)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}
