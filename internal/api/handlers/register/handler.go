package register

import (
	"errors"
	"net/http"

	"github.com/m04kA/holidaze-gateway/internal/api/handlers"
	"github.com/m04kA/holidaze-gateway/internal/service/auth"
	"github.com/m04kA/holidaze-gateway/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные регистрации"
	msgRejected           = "Holidaze отклонил регистрацию"
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

// Handle POST /api/v1/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("POST /auth/register - Validation failed: name=%s, error=%v", req.Name, err)
			handlers.RespondValidationError(w, msgInvalidInput, err)

		case errors.Is(err, auth.ErrRejected):
			h.logger.Warn("POST /auth/register - Rejected by Holidaze: name=%s, error=%v", req.Name, err)
			handlers.RespondUnprocessable(w, msgRejected, err)

		case errors.Is(err, auth.ErrUpstreamUnavailable):
			h.logger.Error("POST /auth/register - Holidaze unavailable: %v", err)
			handlers.RespondUpstreamUnavailable(w)

		default:
			h.logger.Error("POST /auth/register - Failed to register: name=%s, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/register - Profile registered: name=%s", result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
