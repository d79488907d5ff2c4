// Package metrics holds the Prometheus collectors for the library service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "library"

// Circulation outcomes.
const (
	OutcomeSuccess      = "success"
	OutcomeNotFound     = "not_found"
	OutcomeInvalidState = "invalid_state"
	OutcomeConflict     = "conflict"
	OutcomeInconsistent = "inconsistent"
	OutcomeError        = "error"
)

// Metrics provides observability for HTTP traffic and copy circulation.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	CirculationOps      *prometheus.CounterVec
	CirculationDuration *prometheus.HistogramVec
	CopiesOnLoan        prometheus.Gauge
}

// New creates a registry with Go/process collectors and all service metrics.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)
	buckets := []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}

	return &Metrics{
		registry: reg,
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests by method and route",
			Buckets:   buckets,
		}, []string{"method", "route"}),
		CirculationOps: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "circulation_operations_total",
			Help:      "Copy lifecycle operations by operation and outcome",
		}, []string{"operation", "outcome"}),
		CirculationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "circulation_operation_duration_seconds",
			Help:      "Duration of copy lifecycle operations including the transaction",
			Buckets:   buckets,
		}, []string{"operation"}),
		CopiesOnLoan: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "copies_on_loan",
			Help:      "Copies issued minus copies returned since process start",
		}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveCirculation records one lifecycle operation. Call with time.Now()
// taken at the start of the operation.
func (m *Metrics) ObserveCirculation(operation, outcome string, start time.Time) {
	m.CirculationOps.WithLabelValues(operation, outcome).Inc()
	m.CirculationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	if outcome != OutcomeSuccess {
		return
	}
	switch operation {
	case "issue":
		m.CopiesOnLoan.Inc()
	case "return":
		m.CopiesOnLoan.Dec()
	}
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
