package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/holidaze-gateway/internal/api/handlers"
	"github.com/m04kA/holidaze-gateway/internal/service/auth"
	"github.com/m04kA/holidaze-gateway/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректный email или пароль"
	msgInvalidCredentials = "неверный email или пароль"
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

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("POST /auth/login - Validation failed: %v", err)
			handlers.RespondValidationError(w, msgInvalidInput, err)

		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials: email=%s", req.Email)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, auth.ErrUpstreamUnavailable):
			h.logger.Error("POST /auth/login - Holidaze unavailable: %v", err)
			handlers.RespondUpstreamUnavailable(w)

		default:
			h.logger.Error("POST /auth/login - Failed to login: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - Session created: profile=%s", result.Profile.Name)
	handlers.RespondJSON(w, http.StatusOK, result)
}
