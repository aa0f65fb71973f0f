package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dutchhelper_http_requests_total",
		Help: "HTTP requests by method, path and status code.",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "dutchhelper_http_request_duration_seconds",
		Help: "HTTP request duration. Analysis endpoints are dominated by upstream LLM round trips.",
		// Upstream calls routinely take seconds, so the buckets reach well past the defaults.
		Buckets: []float64{0.005, 0.05, 0.25, 1, 2.5, 5, 10, 30, 60},
	}, []string{"method", "path"})
)

// Metrics returns middleware that records Prometheus counters and latency
// histograms per request. Paths are used as-is; the route table is small and
// static, so label cardinality stays bounded.
func Metrics() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(sw.status)).Inc()
			httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
		})
	}
}
