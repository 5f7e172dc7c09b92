package bookings

import (
	"context"
	"time"

	"github.com/m04kA/holidaze-gateway/internal/domain"
	"github.com/m04kA/holidaze-gateway/internal/infra/queue"
)

// HolidazeClient интерфейс клиента Holidaze API
type HolidazeClient interface {
	GetProfileBookings(ctx context.Context, token, name string) ([]domain.Booking, error)
	GetProfileVenues(ctx context.Context, token, name string) ([]domain.Venue, error)
	CancelBooking(ctx context.Context, token, bookingID string) error
}

// VenueCache интерфейс инвалидации кэша площадок
type VenueCache interface {
	Invalidate(ctx context.Context, id string) error
}

// EventPublisher интерфейс публикации событий бронирований
type EventPublisher interface {
	PublishBookingEvent(ctx context.Context, event queue.BookingEvent) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальная реализация TimeProvider
type RealTimeProvider struct{}

// Now возвращает текущее время в UTC
func (r *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
