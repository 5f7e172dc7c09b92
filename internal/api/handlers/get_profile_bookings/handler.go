package get_profile_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/holidaze-gateway/internal/api/handlers"
	"github.com/m04kA/holidaze-gateway/internal/api/middleware"
	"github.com/m04kA/holidaze-gateway/internal/service/bookings"
)

const (
	msgUnauthorized  = "требуется авторизация"
	msgTokenRejected = "токен Holidaze недействителен, войдите заново"
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

// Handle GET /api/v1/profile/bookings
// Возвращает бронирования пользователя, разделенные на предстоящие и прошедшие
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.GetProfileBookings(r.Context(), session)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrUnauthorized):
			handlers.RespondUnauthorized(w, msgTokenRejected)

		case errors.Is(err, bookings.ErrUpstreamUnavailable):
			h.logger.Error("GET /profile/bookings - Holidaze unavailable: %v", err)
			handlers.RespondUpstreamUnavailable(w)

		default:
			h.logger.Error("GET /profile/bookings - Failed to get bookings: profile=%s, error=%v", session.Profile.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /profile/bookings - Bookings loaded: profile=%s, upcoming=%d, past=%d",
		session.Profile.Name, len(result.Upcoming), len(result.Past))
	handlers.RespondJSON(w, http.StatusOK, result)
}
