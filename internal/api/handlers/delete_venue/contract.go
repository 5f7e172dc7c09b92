package delete_venue

import (
	"context"

	"github.com/m04kA/holidaze-gateway/internal/domain"
)

type VenueService interface {
	Delete(ctx context.Context, session *domain.Session, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
