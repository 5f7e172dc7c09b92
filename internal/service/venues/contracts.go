package venues

import (
	"context"

	"github.com/m04kA/holidaze-gateway/internal/domain"
	venueCache "github.com/m04kA/holidaze-gateway/internal/infra/cache/venue"
	"github.com/m04kA/holidaze-gateway/internal/integrations/holidaze"
)

// HolidazeClient интерфейс клиента Holidaze API
type HolidazeClient interface {
	ListVenues(ctx context.Context, page, limit int) (*holidaze.VenuePage, error)
	SearchVenues(ctx context.Context, query string) ([]domain.Venue, error)
	GetVenue(ctx context.Context, id string) (*domain.Venue, error)
	GetProfileVenues(ctx context.Context, token, name string) ([]domain.Venue, error)
	CreateVenue(ctx context.Context, token string, draft domain.VenueDraft) (*domain.Venue, error)
	UpdateVenue(ctx context.Context, token, id string, draft domain.VenueDraft) (*domain.Venue, error)
	DeleteVenue(ctx context.Context, token, id string) error
}

// VenueCache интерфейс кэша снимков площадок
type VenueCache interface {
	Get(ctx context.Context, id string) (*domain.Venue, error)
	Set(ctx context.Context, v *domain.Venue) error
	GetList(ctx context.Context, key string) (*venueCache.List, error)
	SetList(ctx context.Context, key string, l *venueCache.List) error
	Invalidate(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
