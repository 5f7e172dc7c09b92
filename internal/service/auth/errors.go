package auth

import (
	"errors"
	"fmt"

	"github.com/m04kA/holidaze-gateway/internal/integrations/holidaze"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("auth: invalid input data")

	// ErrInvalidCredentials возвращается при неверном email или пароле
	ErrInvalidCredentials = errors.New("auth: invalid email or password")

	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("auth: session not found")

	// ErrSessionExpired возвращается, когда сессия истекла или отозвана
	ErrSessionExpired = errors.New("auth: session expired")

	// ErrUnauthorized возвращается, когда API отклонил токен сессии
	ErrUnauthorized = errors.New("auth: remote token rejected")

	// ErrRejected возвращается, когда API отклонил запрос (сообщение API внутри)
	ErrRejected = errors.New("auth: request rejected")

	// ErrUpstreamUnavailable возвращается при недоступности Holidaze API
	ErrUpstreamUnavailable = errors.New("auth: holidaze api unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)

// mapClientError переводит ошибку клиента Holidaze в ошибку сервиса
// *holidaze.APIError сохраняется в цепочке для errors.As
func mapClientError(op string, err error) error {
	switch {
	case errors.Is(err, holidaze.ErrUnauthorized):
		return fmt.Errorf("%w: %s: %w", ErrUnauthorized, op, err)
	case errors.Is(err, holidaze.ErrRejected), errors.Is(err, holidaze.ErrForbidden), errors.Is(err, holidaze.ErrNotFound):
		return fmt.Errorf("%w: %s: %w", ErrRejected, op, err)
	case errors.Is(err, holidaze.ErrUnavailable), errors.Is(err, holidaze.ErrRateLimited):
		return fmt.Errorf("%w: %s: %v", ErrUpstreamUnavailable, op, err)
	default:
		return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
	}
}
