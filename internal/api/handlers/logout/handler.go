package logout

import (
	"errors"
	"net/http"

	"github.com/m04kA/holidaze-gateway/internal/api/handlers"
	"github.com/m04kA/holidaze-gateway/internal/api/middleware"
	"github.com/m04kA/holidaze-gateway/internal/service/auth"
)

const (
	msgUnauthorized = "требуется авторизация"
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

// Handle POST /api/v1/auth/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if err := h.service.Logout(r.Context(), session.ID); err != nil {
		if errors.Is(err, auth.ErrSessionNotFound) {
			h.logger.Warn("POST /auth/logout - Session already revoked: profile=%s", session.Profile.Name)
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}
		h.logger.Error("POST /auth/logout - Failed to revoke session: profile=%s, error=%v", session.Profile.Name, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/logout - Session revoked: profile=%s", session.Profile.Name)
	w.WriteHeader(http.StatusNoContent)
}
