// Package metrics provides Prometheus metrics for the Clinical Trials MCP
// server. It tracks tool call counts, latencies, registry API performance,
// and projection activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "clinicaltrials_mcp"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures request latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Request latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing requests
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed",
	}, []string{"tool"})

	// RegistryAPILatency measures registry API call latency by action
	RegistryAPILatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "registry_api_latency_seconds",
		Help:      "ClinicalTrials.gov API call latency by action",
		Buckets:   prometheus.DefBuckets,
	}, []string{"action"})

	// RegistryAPIRequestsTotal counts registry API requests
	RegistryAPIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "registry_api_requests_total",
		Help:      "Total ClinicalTrials.gov API requests by action and status",
	}, []string{"action", "status"})

	// RegistryAPIErrors counts registry API errors by error code
	RegistryAPIErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "registry_api_errors_total",
		Help:      "ClinicalTrials.gov API errors by action and error code",
	}, []string{"action", "error_code"})

	// StudiesReturned tracks how many studies each search returns
	StudiesReturned = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "studies_returned",
		Help:      "Distribution of study counts returned per tool call",
		Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
	}, []string{"tool"})

	// ProjectedFields tracks how many canonical fields are requested per call
	ProjectedFields = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "projected_fields",
		Help:      "Distribution of canonical field counts per projection",
		Buckets:   []float64{1, 2, 5, 10, 20, 30, 50},
	})

	// PanicsRecovered counts recovered panics
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})

	// HTTPRequestsTotal counts HTTP transport requests
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by method and status",
	}, []string{"method", "status"})
)

// RecordRequest records a completed tool call with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	RequestsTotal.WithLabelValues(tool, status).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordAPICall records a registry API call
func RecordAPICall(action string, duration float64, success bool, errorCode string) {
	status := "success"
	if !success {
		status = "error"
	}
	RegistryAPIRequestsTotal.WithLabelValues(action, status).Inc()
	RegistryAPILatency.WithLabelValues(action).Observe(duration)
	if errorCode != "" {
		RegistryAPIErrors.WithLabelValues(action, errorCode).Inc()
	}
}
