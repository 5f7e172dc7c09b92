package search_venues

import (
	"context"

	"github.com/m04kA/holidaze-gateway/internal/service/venues/models"
)

type VenueService interface {
	Search(ctx context.Context, req *models.SearchVenuesRequest) (*models.VenueListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
