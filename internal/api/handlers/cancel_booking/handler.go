package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/holidaze-gateway/internal/api/handlers"
	"github.com/m04kA/holidaze-gateway/internal/api/middleware"
	"github.com/m04kA/holidaze-gateway/internal/service/bookings"
)

const (
	msgUnauthorized     = "требуется авторизация"
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
	msgAccessDenied     = "нет доступа к бронированию"
	msgTokenRejected    = "токен Holidaze недействителен, войдите заново"
	msgRejected         = "Holidaze отклонил отмену"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	bookingID := mux.Vars(r)["bookingId"]

	if err := h.service.Cancel(r.Context(), session, bookingID); err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/{id} - Booking not found: booking_id=%s, profile=%s", bookingID, session.Profile.Name)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("DELETE /bookings/{id} - Access denied: booking_id=%s, profile=%s", bookingID, session.Profile.Name)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrUnauthorized):
			handlers.RespondUnauthorized(w, msgTokenRejected)

		case errors.Is(err, bookings.ErrRejected):
			handlers.RespondUnprocessable(w, msgRejected, err)

		case errors.Is(err, bookings.ErrUpstreamUnavailable):
			h.logger.Error("DELETE /bookings/{id} - Holidaze unavailable: %v", err)
			handlers.RespondUpstreamUnavailable(w)

		default:
			h.logger.Error("DELETE /bookings/{id} - Failed to cancel booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Booking cancelled: booking_id=%s, profile=%s", bookingID, session.Profile.Name)
	w.WriteHeader(http.StatusNoContent)
}
