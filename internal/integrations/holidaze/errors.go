package holidaze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound возвращается, когда ресурс не найден (404)
	ErrNotFound = errors.New("holidaze client: resource not found")

	// ErrUnauthorized возвращается при невалидном или истекшем токене (401)
	ErrUnauthorized = errors.New("holidaze client: unauthorized")

	// ErrForbidden возвращается, когда у пользователя нет прав на операцию (403)
	ErrForbidden = errors.New("holidaze client: forbidden")

	// ErrRejected возвращается, когда API отклонил запрос как некорректный (400, 409)
	ErrRejected = errors.New("holidaze client: request rejected")

	// ErrRateLimited возвращается, когда API ограничил частоту запросов (429)
	ErrRateLimited = errors.New("holidaze client: rate limited")

	// ErrUnavailable возвращается при недоступности API (5xx, сетевые ошибки)
	ErrUnavailable = errors.New("holidaze client: service unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("holidaze client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("holidaze client: invalid response")
)

// APIError ошибка, возвращенная Holidaze API, с сообщениями из тела ответа
// Классифицируется через errors.Is по одной из sentinel-ошибок пакета
type APIError struct {
	StatusCode int
	Messages   []string
	kind       error
}

// NewAPIError создает ошибку API для HTTP статуса status
func NewAPIError(status int, messages ...string) *APIError {
	return &APIError{StatusCode: status, Messages: messages, kind: kindForStatus(status)}
}

// Error реализует интерфейс error
func (e *APIError) Error() string {
	return fmt.Sprintf("%v: status %d: %s", e.kind, e.StatusCode, e.Message())
}

// Unwrap возвращает sentinel-ошибку для errors.Is
func (e *APIError) Unwrap() error {
	return e.kind
}

// Message возвращает сообщения API одной строкой
func (e *APIError) Message() string {
	if len(e.Messages) == 0 {
		return "no details"
	}
	return strings.Join(e.Messages, "; ")
}

// kindForStatus сопоставляет HTTP статус ответа API с sentinel-ошибкой
func kindForStatus(status int) error {
	switch {
	case status == 400 || status == 409 || status == 422:
		return ErrRejected
	case status == 401:
		return ErrUnauthorized
	case status == 403:
		return ErrForbidden
	case status == 404:
		return ErrNotFound
	case status == 429:
		return ErrRateLimited
	case status >= 500:
		return ErrUnavailable
	default:
		return ErrInvalidResponse
	}
}

var errEmptyToken = fmt.Errorf("%w: login response without access token", ErrInvalidResponse)
