package update_avatar

import (
	"errors"
	"net/http"

	"github.com/m04kA/holidaze-gateway/internal/api/handlers"
	"github.com/m04kA/holidaze-gateway/internal/api/middleware"
	"github.com/m04kA/holidaze-gateway/internal/service/auth"
	"github.com/m04kA/holidaze-gateway/internal/service/auth/models"
)

const (
	msgUnauthorized       = "требуется авторизация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidAvatar      = "некорректный адрес изображения"
	msgTokenRejected      = "Holidaze отклонил токен сессии, выполните вход заново"
	msgRejected           = "Holidaze отклонил обновление аватара"
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

// Handle PUT /api/v1/profile/avatar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.UpdateAvatarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /profile/avatar - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateAvatar(r.Context(), session, &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			handlers.RespondValidationError(w, msgInvalidAvatar, err)

		case errors.Is(err, auth.ErrUnauthorized):
			h.logger.Warn("PUT /profile/avatar - Token rejected: profile=%s", session.Profile.Name)
			handlers.RespondUnauthorized(w, msgTokenRejected)

		case errors.Is(err, auth.ErrRejected):
			h.logger.Warn("PUT /profile/avatar - Rejected by Holidaze: profile=%s, error=%v", session.Profile.Name, err)
			handlers.RespondUnprocessable(w, msgRejected, err)

		case errors.Is(err, auth.ErrUpstreamUnavailable):
			h.logger.Error("PUT /profile/avatar - Holidaze unavailable: %v", err)
			handlers.RespondUpstreamUnavailable(w)

		default:
			h.logger.Error("PUT /profile/avatar - Failed to update avatar: profile=%s, error=%v", session.Profile.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /profile/avatar - Avatar updated: profile=%s", session.Profile.Name)
	handlers.RespondJSON(w, http.StatusOK, result)
}
