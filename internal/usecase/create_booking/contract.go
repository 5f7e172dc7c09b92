package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/holidaze-gateway/internal/domain"
	"github.com/m04kA/holidaze-gateway/internal/infra/queue"
)

// HolidazeClient интерфейс клиента Holidaze API
type HolidazeClient interface {
	GetVenue(ctx context.Context, id string) (*domain.Venue, error)
	CreateBooking(ctx context.Context, token, venueID string, proposal domain.BookingProposal) (*domain.Booking, error)
}

// VenueCache интерфейс инвалидации кэша площадок
type VenueCache interface {
	Invalidate(ctx context.Context, id string) error
}

// EventPublisher интерфейс публикации событий бронирований
type EventPublisher interface {
	PublishBookingEvent(ctx context.Context, event queue.BookingEvent) error
}

// Metrics интерфейс учета результатов валидации
type Metrics interface {
	ObserveValidation(result string)
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
