package get_profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/holidaze-gateway/internal/api/handlers"
	"github.com/m04kA/holidaze-gateway/internal/api/middleware"
	"github.com/m04kA/holidaze-gateway/internal/service/auth"
)

const (
	msgUnauthorized  = "требуется авторизация"
	msgTokenRejected = "Holidaze отклонил токен сессии, выполните вход заново"
	msgRejected      = "Holidaze отклонил запрос профиля"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.GetProfile(r.Context(), session)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUnauthorized):
			h.logger.Warn("GET /profile - Token rejected: profile=%s", session.Profile.Name)
			handlers.RespondUnauthorized(w, msgTokenRejected)

		case errors.Is(err, auth.ErrRejected):
			h.logger.Warn("GET /profile - Rejected by Holidaze: profile=%s, error=%v", session.Profile.Name, err)
			handlers.RespondUnprocessable(w, msgRejected, err)

		case errors.Is(err, auth.ErrUpstreamUnavailable):
			h.logger.Error("GET /profile - Holidaze unavailable: %v", err)
			handlers.RespondUpstreamUnavailable(w)

		default:
			h.logger.Error("GET /profile - Failed to get profile: profile=%s, error=%v", session.Profile.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
