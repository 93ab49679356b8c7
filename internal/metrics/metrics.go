// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Workflow results recorded on WorkflowOutcomes.
const (
	ResultCreated   = "created"
	ResultUpdated   = "updated"
	ResultDeleted   = "deleted"
	ResultInvalid   = "invalid"
	ResultDuplicate = "duplicate"
	ResultBlocked   = "blocked"
	ResultMissing   = "missing"
)

var (
	// Registry is the registry served on /metrics.
	Registry = prometheus.NewRegistry()

	// WorkflowOutcomes counts how mutating workflows ended.
	WorkflowOutcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "catalog",
		Name:      "workflow_outcomes_total",
		Help:      "Outcomes of catalog create, update and delete workflows.",
	}, []string{"resource", "action", "result"})

	// HTTPRequests counts served requests by route pattern and status.
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "catalog",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	// HTTPDuration observes request latency by route pattern.
	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "catalog",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		WorkflowOutcomes,
		HTTPRequests,
		HTTPDuration,
	)
}

// Outcome records one workflow result.
func Outcome(resource, action, result string) {
	WorkflowOutcomes.WithLabelValues(resource, action, result).Inc()
}
