package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/holidaze-gateway/internal/domain"
	"github.com/m04kA/holidaze-gateway/internal/integrations/holidaze"
)

const (
	msgInternalError       = "внутренняя ошибка сервера"
	msgUpstreamUnavailable = "сервис Holidaze временно недоступен"
	maxBodyBytes           = 1 << 20
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"` // сообщение Holidaze API, если есть
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// RespondError отправляет ответ с ошибкой
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondBadRequest 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondValidationError 400 с описанием нарушенного правила
func RespondValidationError(w http.ResponseWriter, message string, err error) {
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{Error: message, Details: err.Error()})
}

// RespondUnauthorized 401
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

// RespondForbidden 403
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

// RespondNotFound 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict 409
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondUnprocessable 422 с сообщением Holidaze API из цепочки err
func RespondUnprocessable(w http.ResponseWriter, message string, err error) {
	RespondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: message, Details: RemoteMessage(err)})
}

// RespondUpstreamUnavailable 503
func RespondUpstreamUnavailable(w http.ResponseWriter) {
	RespondError(w, http.StatusServiceUnavailable, msgUpstreamUnavailable)
}

// RespondInternalError 500
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// DecodeJSON декодирует тело запроса, неизвестные поля запрещены
func DecodeJSON(r *http.Request, dest interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}

// ParseOptionalDate разбирает дату YYYY-MM-DD, пустая строка дает нулевое время.
// field попадает в текст ошибки
func ParseOptionalDate(raw, field string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, nil
	}
	t, err := domain.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", field, err)
	}
	return t, nil
}

// RemoteMessage возвращает сообщение Holidaze API из цепочки ошибок или пустую строку
func RemoteMessage(err error) string {
	var apiErr *holidaze.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message()
	}
	return ""
}
