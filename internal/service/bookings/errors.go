package bookings

import (
	"errors"
	"fmt"

	"github.com/m04kA/holidaze-gateway/internal/integrations/holidaze"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено среди бронирований пользователя
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrAccessDenied возвращается, когда API запретил операцию
	ErrAccessDenied = errors.New("bookings: access denied")

	// ErrNotVenueManager возвращается, когда пользователь не является менеджером площадок
	ErrNotVenueManager = errors.New("bookings: profile is not a venue manager")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrUnauthorized возвращается, когда API отклонил токен сессии
	ErrUnauthorized = errors.New("bookings: remote token rejected")

	// ErrRejected возвращается, когда API отклонил запрос (сообщение API внутри)
	ErrRejected = errors.New("bookings: request rejected")

	// ErrUpstreamUnavailable возвращается при недоступности Holidaze API
	ErrUpstreamUnavailable = errors.New("bookings: holidaze api unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)

// mapClientError переводит ошибку клиента Holidaze в ошибку сервиса
func mapClientError(op string, err error) error {
	switch {
	case errors.Is(err, holidaze.ErrNotFound):
		return ErrBookingNotFound
	case errors.Is(err, holidaze.ErrForbidden):
		return ErrAccessDenied
	case errors.Is(err, holidaze.ErrUnauthorized):
		return fmt.Errorf("%w: %s: %w", ErrUnauthorized, op, err)
	case errors.Is(err, holidaze.ErrRejected):
		return fmt.Errorf("%w: %s: %w", ErrRejected, op, err)
	case errors.Is(err, holidaze.ErrUnavailable), errors.Is(err, holidaze.ErrRateLimited):
		return fmt.Errorf("%w: %s: %v", ErrUpstreamUnavailable, op, err)
	default:
		return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
	}
}
