package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operation outcomes
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics provides observability for the directory entry lifecycle.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Operations       *prometheus.CounterVec
	Compensations    *prometheus.CounterVec
	SatelliteLookups *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New registers every collector on reg.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "directory_entry_operations_total",
			Help: "Directory entry lifecycle operations by outcome",
		}, []string{"operation", "outcome"}),
		Compensations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "directory_entry_compensations_total",
			Help: "Compensating actions issued after a partial write failure",
		}, []string{"step"}),
		SatelliteLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "directory_entry_satellite_lookups_total",
			Help: "Batched satellite table lookups issued by enrichment",
		}, []string{"role"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route", "status"}),
		gatherer: reg,
	}
}

// ObserveOperation counts one lifecycle operation, failed when err is non-nil.
func (m *Metrics) ObserveOperation(operation string, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	m.Operations.WithLabelValues(operation, outcome).Inc()
}

// IncrementCompensation records a compensating action for step.
func (m *Metrics) IncrementCompensation(step string) {
	if m == nil {
		return
	}
	m.Compensations.WithLabelValues(step).Inc()
}

// IncrementSatelliteLookup records one batched lookup against the satellite table of role.
func (m *Metrics) IncrementSatelliteLookup(role string) {
	if m == nil {
		return
	}
	m.SatelliteLookups.WithLabelValues(role).Inc()
}

// ObserveRequest records the duration of an HTTP request.
// Call with time.Now() at the start of the request.
func (m *Metrics) ObserveRequest(method, route string, status int, start time.Time) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
