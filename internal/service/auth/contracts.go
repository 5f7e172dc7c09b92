package auth

import (
	"context"
	"time"

	"github.com/m04kA/holidaze-gateway/internal/domain"
	"github.com/m04kA/holidaze-gateway/internal/integrations/holidaze"
)

// HolidazeClient интерфейс клиента Holidaze API
type HolidazeClient interface {
	Login(ctx context.Context, email, password string) (*holidaze.LoginResult, error)
	Register(ctx context.Context, reg domain.Registration) (*domain.Profile, error)
	GetProfile(ctx context.Context, token, name string) (*domain.Profile, error)
	UpdateAvatar(ctx context.Context, token, name string, avatar domain.Media) (*domain.Profile, error)
}

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	UpdateProfile(ctx context.Context, id string, profile domain.Profile) error
	Revoke(ctx context.Context, id string, at time.Time) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время в UTC
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
