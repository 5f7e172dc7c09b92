package get_profile

import (
	"context"

	"github.com/m04kA/holidaze-gateway/internal/domain"
	"github.com/m04kA/holidaze-gateway/internal/service/auth/models"
)

type AuthService interface {
	GetProfile(ctx context.Context, session *domain.Session) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
