package get_profile_bookings

import (
	"context"

	"github.com/m04kA/holidaze-gateway/internal/domain"
	"github.com/m04kA/holidaze-gateway/internal/service/bookings/models"
)

type BookingService interface {
	GetProfileBookings(ctx context.Context, session *domain.Session) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
