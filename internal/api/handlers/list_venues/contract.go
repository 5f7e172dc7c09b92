package list_venues

import (
	"context"

	"github.com/m04kA/holidaze-gateway/internal/service/venues/models"
)

type VenueService interface {
	List(ctx context.Context, req *models.ListVenuesRequest) (*models.VenueListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
