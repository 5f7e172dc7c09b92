package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/holidaze-gateway/internal/domain"
)

// VenueProvider интерфейс получения снимка площадки (кэш допустим)
type VenueProvider interface {
	Venue(ctx context.Context, id string) (*domain.Venue, error)
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
