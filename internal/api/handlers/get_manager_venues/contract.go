package get_manager_venues

import (
	"context"

	"github.com/m04kA/holidaze-gateway/internal/domain"
	"github.com/m04kA/holidaze-gateway/internal/service/venues/models"
)

type VenueService interface {
	ManagerVenues(ctx context.Context, session *domain.Session) ([]models.VenueResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
