// Package metrics records HTTP request metrics for both runtimes.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Runtime labels.
const (
	RuntimeServer   = "server"
	RuntimeFunction = "function"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Number of HTTP requests, by runtime, method, route and status.",
		},
		[]string{"runtime", "method", "route", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency, by runtime, method and route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"runtime", "method", "route"},
	)
)

// Observe records one finished request. An empty route is reported as "unmatched"
// so unknown paths cannot blow up label cardinality.
func Observe(runtime, method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	requestsTotal.WithLabelValues(runtime, method, route, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(runtime, method, route).Observe(elapsed.Seconds())
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
