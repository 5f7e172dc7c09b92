package quote_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/holidaze-gateway/internal/service/venues"
)

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("quote_booking: venue not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_booking: invalid input data")

	// ErrUpstreamUnavailable возвращается при недоступности Holidaze API
	ErrUpstreamUnavailable = errors.New("quote_booking: holidaze api unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote_booking: internal error")
)

// mapVenueError переводит ошибку сервиса площадок в ошибку usecase
func mapVenueError(err error) error {
	switch {
	case errors.Is(err, venues.ErrVenueNotFound):
		return ErrVenueNotFound
	case errors.Is(err, venues.ErrInvalidInput):
		return ErrInvalidInput
	case errors.Is(err, venues.ErrUpstreamUnavailable):
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	default:
		return fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}
}
