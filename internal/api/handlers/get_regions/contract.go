package get_regions

import (
	"context"

	"github.com/m04kA/holidaze-gateway/internal/service/venues/models"
)

type VenueService interface {
	Regions(ctx context.Context) (*models.RegionsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
