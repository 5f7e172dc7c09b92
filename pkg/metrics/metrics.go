package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics коллектор метрик сервиса
// Все методы безопасны для вызова на nil (метрики выключены)
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	upstreamRequestsTotal   *prometheus.CounterVec
	upstreamRequestDuration *prometheus.HistogramVec

	proposalValidations *prometheus.CounterVec

	dbQueriesTotal  *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec
}

// New создает коллектор с собственным реестром
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		upstreamRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "upstream_requests_total",
			Help:        "Total number of requests to the Holidaze API",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),
		upstreamRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "upstream_request_duration_seconds",
			Help:        "Holidaze API request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),
		proposalValidations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_proposal_validations_total",
			Help:        "Booking proposal validation results",
			ConstLabels: constLabels,
		}, []string{"result"}),
		dbQueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.upstreamRequestsTotal,
		m.upstreamRequestDuration,
		m.proposalValidations,
		m.dbQueriesTotal,
		m.dbQueryDuration,
	)

	return m
}

// Handler HTTP handler для /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveHTTPRequest записывает входящий HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveUpstream записывает запрос к Holidaze API
// status = 0 означает сетевую ошибку
func (m *Metrics) ObserveUpstream(operation string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.upstreamRequestsTotal.WithLabelValues(operation, strconv.Itoa(status)).Inc()
	m.upstreamRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// ObserveValidation записывает результат валидации предложения бронирования
func (m *Metrics) ObserveValidation(result string) {
	if m == nil {
		return
	}
	m.proposalValidations.WithLabelValues(result).Inc()
}

// ObserveDBQuery записывает запрос к базе данных
func (m *Metrics) ObserveDBQuery(operation string, success bool, duration time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if !success {
		status = "error"
	}
	m.dbQueriesTotal.WithLabelValues(operation, status).Inc()
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
