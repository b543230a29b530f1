// Package metrics exposes Prometheus collectors for the registry workflow.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "registry"

// Registry holds the workflow counters.
type Registry struct {
	applicationsCreated *prometheus.CounterVec
	reviews             *prometheus.CounterVec
	reviewRetries       prometheus.Counter
	eventFailures       prometheus.Counter
	httpRequests        *prometheus.CounterVec
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return New(prometheus.DefaultRegisterer)
})

// Default returns the process-wide registry bound to the default Prometheus
// registerer.
func Default() *Registry {
	return defaultRegistry()
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Registry {
	f := promauto.With(reg)
	return &Registry{
		applicationsCreated: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "applications_created_total",
			Help:      "Applications created, by type.",
		}, []string{"type"}),
		reviews: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reviews_total",
			Help:      "Completed reviews, by application type and decision.",
		}, []string{"type", "decision"}),
		reviewRetries: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "serialization_retries_total",
			Help:      "Units of work retried after a serialization conflict.",
		}),
		eventFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "review_event_failures_total",
			Help:      "Review events that could not be published.",
		}),
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests, by method and status class.",
		}, []string{"method", "status"}),
	}
}

func (r *Registry) ApplicationCreated(typ string) {
	r.applicationsCreated.WithLabelValues(typ).Inc()
}

func (r *Registry) Reviewed(typ, decision string) {
	r.reviews.WithLabelValues(typ, decision).Inc()
}

func (r *Registry) Retried() {
	r.reviewRetries.Inc()
}

func (r *Registry) EventFailed() {
	r.eventFailures.Inc()
}

func (r *Registry) HTTPRequest(method, statusClass string) {
	r.httpRequests.WithLabelValues(method, statusClass).Inc()
}
