package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/holidaze-gateway/internal/integrations/holidaze"
)

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("create_booking: venue not found")

	// ErrDateInPast возвращается, когда дата заезда раньше сегодняшнего дня
	ErrDateInPast = errors.New("create_booking: check-in date is in the past")

	// ErrInvalidProposal возвращается, когда предложение не прошло проверку доступности
	// Причина (ошибка пакета availability) доступна через errors.Is
	ErrInvalidProposal = errors.New("create_booking: booking proposal rejected")

	// ErrUnauthorized возвращается, когда API отклонил токен сессии
	ErrUnauthorized = errors.New("create_booking: remote token rejected")

	// ErrRejected возвращается, когда API отклонил бронирование (сообщение API внутри)
	ErrRejected = errors.New("create_booking: booking rejected by holidaze api")

	// ErrUpstreamUnavailable возвращается при недоступности Holidaze API
	ErrUpstreamUnavailable = errors.New("create_booking: holidaze api unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// mapClientError переводит ошибку клиента Holidaze в ошибку usecase
func mapClientError(op string, err error) error {
	switch {
	case errors.Is(err, holidaze.ErrNotFound):
		return ErrVenueNotFound
	case errors.Is(err, holidaze.ErrUnauthorized):
		return fmt.Errorf("%w: %s: %w", ErrUnauthorized, op, err)
	case errors.Is(err, holidaze.ErrRejected), errors.Is(err, holidaze.ErrForbidden):
		return fmt.Errorf("%w: %s: %w", ErrRejected, op, err)
	case errors.Is(err, holidaze.ErrUnavailable), errors.Is(err, holidaze.ErrRateLimited):
		return fmt.Errorf("%w: %s: %v", ErrUpstreamUnavailable, op, err)
	default:
		return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
	}
}
