package get_manager_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/holidaze-gateway/internal/api/handlers"
	"github.com/m04kA/holidaze-gateway/internal/api/middleware"
	"github.com/m04kA/holidaze-gateway/internal/service/bookings"
	"github.com/m04kA/holidaze-gateway/internal/service/bookings/models"
)

const (
	msgUnauthorized    = "требуется авторизация"
	msgNotVenueManager = "доступно только менеджерам площадок"
	msgInvalidSort     = "некорректная сортировка, допустимо: soonest, latest"
	msgTokenRejected   = "токен Holidaze недействителен, войдите заново"
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

// Handle GET /api/v1/manager/bookings
// Query params: sort (soonest | latest)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	req := &models.GetManagerBookingsRequest{Sort: r.URL.Query().Get("sort")}

	result, err := h.service.GetManagerBookings(r.Context(), session, req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrNotVenueManager):
			handlers.RespondForbidden(w, msgNotVenueManager)

		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidSort)

		case errors.Is(err, bookings.ErrUnauthorized):
			handlers.RespondUnauthorized(w, msgTokenRejected)

		case errors.Is(err, bookings.ErrUpstreamUnavailable):
			h.logger.Error("GET /manager/bookings - Holidaze unavailable: %v", err)
			handlers.RespondUpstreamUnavailable(w)

		default:
			h.logger.Error("GET /manager/bookings - Failed to get bookings: profile=%s, error=%v", session.Profile.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /manager/bookings - Bookings loaded: profile=%s, sort=%s, upcoming=%d, past=%d",
		session.Profile.Name, req.Sort, len(result.Upcoming), len(result.Past))
	handlers.RespondJSON(w, http.StatusOK, result)
}
