package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/holidaze-gateway/internal/api/handlers"
	"github.com/m04kA/holidaze-gateway/internal/domain"
	"github.com/m04kA/holidaze-gateway/internal/service/auth"
)

const (
	// SessionHeader альтернативный заголовок с идентификатором сессии
	SessionHeader = "X-Session-ID"

	msgMissingSession = "требуется идентификатор сессии"
	msgInvalidSession = "сессия не найдена или истекла"
)

type sessionKey struct{}

// SessionResolver интерфейс получения активной сессии
type SessionResolver interface {
	Resolve(ctx context.Context, sessionID string) (*domain.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth проверяет сессию из "Authorization: Bearer <id>" или X-Session-ID
// и кладет ее в контекст запроса
func Auth(resolver SessionResolver, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := SessionID(r)
			if sessionID == "" {
				handlers.RespondUnauthorized(w, msgMissingSession)
				return
			}

			session, err := resolver.Resolve(r.Context(), sessionID)
			if err != nil {
				if errors.Is(err, auth.ErrSessionNotFound) || errors.Is(err, auth.ErrSessionExpired) {
					handlers.RespondUnauthorized(w, msgInvalidSession)
					return
				}
				log.Error("Auth: failed to resolve session: %v", err)
				handlers.RespondInternalError(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

// SessionID извлекает идентификатор сессии из заголовков запроса
func SessionID(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, value, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(value)
		}
	}
	return strings.TrimSpace(r.Header.Get(SessionHeader))
}

// WithSession возвращает контекст с сессией
func WithSession(ctx context.Context, session *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetSession возвращает сессию, положенную в контекст middleware Auth
func GetSession(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(*domain.Session)
	return session, ok && session != nil
}
