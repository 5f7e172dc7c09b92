package get_manager_bookings

import (
	"context"

	"github.com/m04kA/holidaze-gateway/internal/domain"
	"github.com/m04kA/holidaze-gateway/internal/service/bookings/models"
)

type BookingService interface {
	GetManagerBookings(ctx context.Context, session *domain.Session, req *models.GetManagerBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
