package holidaze

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	headerAPIKey = "X-Noroff-API-Key"

	// maxErrorBody ограничение на чтение тела ответа с ошибкой
	maxErrorBody = 64 << 10

	// maxPages защита от бесконечной пагинации
	maxPages = 50
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс метрик обращений к API
type Metrics interface {
	ObserveUpstream(operation string, status int, duration time.Duration)
}

// Client клиент для работы с Holidaze API (Noroff v2)
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	metrics    Metrics
	log        Logger
}

// NewClient создает новый экземпляр клиента Holidaze API
// limiter ограничивает исходящие запросы (nil - без ограничения), metrics может быть nil
func NewClient(baseURL, apiKey string, timeout time.Duration, limiter *rate.Limiter, metrics Metrics, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: limiter,
		metrics: metrics,
		log:     log,
	}
}

// NewLimiter создает ограничитель на requestsPerMinute запросов с допустимым всплеском burst
func NewLimiter(requestsPerMinute, burst int) *rate.Limiter {
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), burst)
}

// request описание одного обращения к API
type request struct {
	operation string // имя операции для метрик и логов
	method    string
	path      string
	query     url.Values
	token     string // токен доступа пользователя (пусто для публичных запросов)
	body      interface{}
}

// do выполняет запрос и декодирует поле data ответа в out (если out != nil)
func (c *Client) do(ctx context.Context, r request, out interface{}) (*PageMeta, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %s: rate limiter: %v", ErrInternal, r.operation, err)
		}
	}

	endpoint := c.baseURL + r.path
	if len(r.query) > 0 {
		endpoint += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: failed to encode body: %v", ErrInternal, r.operation, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: failed to create request: %v", ErrInternal, r.operation, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set(headerAPIKey, c.apiKey)
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(r.operation, 0, start)
		if errors.Is(err, context.Canceled) {
			return nil, fmt.Errorf("%w: %s: %v", ErrInternal, r.operation, err)
		}
		c.log.Error("Holidaze API %s %s failed: %v", r.method, r.path, err)
		return nil, fmt.Errorf("%w: %s: failed to execute request: %v", ErrUnavailable, r.operation, err)
	}
	defer resp.Body.Close()
	c.observe(r.operation, resp.StatusCode, start)

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusNoContent:
		return nil, nil
	default:
		apiErr := c.readError(resp)
		if resp.StatusCode >= http.StatusInternalServerError {
			c.log.Error("Holidaze API %s %s: %v", r.method, r.path, apiErr)
		} else {
			c.log.Warn("Holidaze API %s %s: %v", r.method, r.path, apiErr)
		}
		return nil, apiErr
	}

	// Парсим ответ
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: %s: failed to decode response: %v", ErrInvalidResponse, r.operation, err)
	}

	if out != nil {
		if len(env.Data) == 0 || string(env.Data) == "null" {
			return nil, fmt.Errorf("%w: %s: empty data", ErrInvalidResponse, r.operation)
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("%w: %s: failed to decode data: %v", ErrInvalidResponse, r.operation, err)
		}
	}

	return env.Meta, nil
}

// readError собирает APIError из тела ответа с ошибкой
func (c *Client) readError(resp *http.Response) *APIError {
	apiErr := NewAPIError(resp.StatusCode)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return apiErr
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Errors) > 0 {
		for _, m := range env.Errors {
			if m.Message != "" {
				apiErr.Messages = append(apiErr.Messages, m.Message)
			}
		}
		return apiErr
	}

	apiErr.Messages = []string{strings.TrimSpace(string(raw))}
	return apiErr
}

func (c *Client) observe(operation string, status int, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveUpstream(operation, status, time.Since(start))
}

// listAll обходит все страницы списка и собирает элементы
func listAll[T any](ctx context.Context, c *Client, r request, pageSize int) ([]T, error) {
	items := make([]T, 0)

	for page := 1; page <= maxPages; page++ {
		q := url.Values{}
		for k, v := range r.query {
			q[k] = v
		}
		q.Set("page", strconv.Itoa(page))
		q.Set("limit", strconv.Itoa(pageSize))

		paged := r
		paged.query = q

		var chunk []T
		meta, err := c.do(ctx, paged, &chunk)
		if err != nil {
			return nil, err
		}
		items = append(items, chunk...)

		if meta == nil || meta.IsLastPage || len(chunk) == 0 {
			return items, nil
		}
	}

	c.log.Warn("Holidaze API %s: stopped after %d pages", r.operation, maxPages)
	return items, nil
}

// escape экранирует сегмент пути
func escape(segment string) string {
	return url.PathEscape(segment)
}
