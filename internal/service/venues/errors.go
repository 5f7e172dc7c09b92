package venues

import (
	"errors"
	"fmt"

	"github.com/m04kA/holidaze-gateway/internal/integrations/holidaze"
)

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("venues: venue not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("venues: invalid input data")

	// ErrNotVenueManager возвращается, когда пользователь не является менеджером площадок
	ErrNotVenueManager = errors.New("venues: profile is not a venue manager")

	// ErrNotOwner возвращается, когда площадка принадлежит другому менеджеру
	ErrNotOwner = errors.New("venues: venue belongs to another manager")

	// ErrUnauthorized возвращается, когда API отклонил токен сессии
	ErrUnauthorized = errors.New("venues: remote token rejected")

	// ErrRejected возвращается, когда API отклонил запрос (сообщение API внутри)
	ErrRejected = errors.New("venues: request rejected")

	// ErrUpstreamUnavailable возвращается при недоступности Holidaze API
	ErrUpstreamUnavailable = errors.New("venues: holidaze api unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("venues: internal error")
)

// mapClientError переводит ошибку клиента Holidaze в ошибку сервиса
func mapClientError(op string, err error) error {
	switch {
	case errors.Is(err, holidaze.ErrNotFound):
		return ErrVenueNotFound
	case errors.Is(err, holidaze.ErrForbidden):
		return ErrNotOwner
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
