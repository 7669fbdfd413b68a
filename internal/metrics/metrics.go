// Package metrics holds the Prometheus instrumentation for the service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Orchestration and collaborator Prometheus metrics.
var (
	OrchestrationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "serapeum",
			Name:      "orchestrations_total",
			Help:      "Total orchestrator invocations by routed intent and response kind",
		},
		[]string{"intent", "kind"},
	)

	LLMRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "serapeum",
			Name:      "llm_requests_total",
			Help:      "Total LLM calls by role",
		},
		[]string{"role", "status"},
	)

	LLMRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "serapeum",
			Name:      "llm_request_duration_seconds",
			Help:      "LLM call duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"role"},
	)

	CatalogRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "serapeum",
			Name:      "catalog_requests_total",
			Help:      "Total catalog API calls by source",
		},
		[]string{"source", "status"},
	)

	CatalogRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "serapeum",
			Name:      "catalog_request_duration_seconds",
			Help:      "Catalog API call duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"source"},
	)

	WebSearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "serapeum",
			Name:      "web_search_requests_total",
			Help:      "Total web search calls",
		},
		[]string{"status"},
	)
)

var registered bool

// Register registers the service metrics. Must be called once from main.
func Register() {
	if registered {
		return
	}
	prometheus.MustRegister(OrchestrationsTotal)
	prometheus.MustRegister(LLMRequestsTotal)
	prometheus.MustRegister(LLMRequestDuration)
	prometheus.MustRegister(CatalogRequestsTotal)
	prometheus.MustRegister(CatalogRequestDuration)
	prometheus.MustRegister(WebSearchRequestsTotal)
	registered = true
}
