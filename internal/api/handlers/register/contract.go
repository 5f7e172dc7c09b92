package register

import (
	"context"

	"github.com/m04kA/holidaze-gateway/internal/service/auth/models"
)

type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
