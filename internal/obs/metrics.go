package obs

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Lookup outcomes recorded by LookupsTotal.
const (
	OutcomeOK              = "ok"
	OutcomeAreaNotFound    = "area_not_found"
	OutcomeProductNotFound = "product_not_found"
	OutcomeEmptyPriceList  = "empty_price_list"
	OutcomeInvalidQuery    = "invalid_query"
	OutcomeError           = "error"
)

var (
	// Registry holds every collector exposed on /metrics.
	Registry = prometheus.NewRegistry()

	// LookupsTotal counts price aggregator operations by outcome.
	LookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deal_finder_lookups_total",
			Help: "Total number of price lookups by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	// HTTPRequestDuration observes request latency per route pattern.
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "deal_finder_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "status"},
	)
)

func init() {
	Registry.MustRegister(
		LookupsTotal,
		HTTPRequestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// RecordLookup increments the lookup counter.
func RecordLookup(operation, outcome string) {
	LookupsTotal.WithLabelValues(operation, outcome).Inc()
}

// RecordRequest observes the duration of a served request.
func RecordRequest(route string, status int, d time.Duration) {
	HTTPRequestDuration.WithLabelValues(route, strconv.Itoa(status)).Observe(d.Seconds())
}

// MetricsHandler serves the Prometheus exposition format.
func MetricsHandler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
