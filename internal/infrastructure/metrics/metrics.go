// Package metrics exposes Prometheus collectors for the HTTP layer and the database pool.
package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"imaut/internal/infrastructure/storage/postgres"
	"imaut/pkg/logger"
)

const namespace = "imaut"

// Metrics owns a private registry so tests and multiple services never collide.
type Metrics struct {
	Registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	service  string
}

// New registers the HTTP collectors for service.
func New(service string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		Registry: reg,
		service:  service,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "requests_total",
			Help:        "HTTP requests by method, route and status.",
			ConstLabels: prometheus.Labels{"service": service},
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "request_duration_seconds",
			Help:        "HTTP request latency by method and route.",
			ConstLabels: prometheus.Labels{"service": service},
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(m.requests, m.duration)
	return m
}

// ObserveRequest records one finished request. Unmatched routes are reported as "unmatched".
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RegisterPool exports pool statistics as gauges read at scrape time.
func (m *Metrics) RegisterPool(pool *postgres.Pool) {
	gauge := func(name, help string, value func(postgres.PoolStats) float64) prometheus.Collector {
		return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   "db_pool",
			Name:        name,
			Help:        help,
			ConstLabels: prometheus.Labels{"service": m.service},
		}, func() float64 { return value(pool.Stats()) })
	}

	m.Registry.MustRegister(
		gauge("total_conns", "Connections currently open.", func(s postgres.PoolStats) float64 { return float64(s.TotalConns) }),
		gauge("acquired_conns", "Connections currently in use.", func(s postgres.PoolStats) float64 { return float64(s.AcquiredConns) }),
		gauge("idle_conns", "Idle connections.", func(s postgres.PoolStats) float64 { return float64(s.IdleConns) }),
		gauge("max_conns", "Configured pool size.", func(s postgres.PoolStats) float64 { return float64(s.MaxConns) }),
	)
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{
		ErrorLog:      errorLog{},
		ErrorHandling: promhttp.ContinueOnError,
	})
}

// errorLog implements promhttp.Logger.
type errorLog struct{}

func (errorLog) Println(v ...any) {
	logger.Default().Errorw("metrics handler error", "error", fmt.Sprint(v...))
}
