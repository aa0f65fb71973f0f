package rest

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the route table. Middleware is applied by the caller
// around the returned mux.
func NewRouter(analyze *AnalyzeHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/message", analyze.Message)
	mux.HandleFunc("POST /api/analyze", analyze.AnalyzeText)
	mux.HandleFunc("POST /api/analyze-sentence", analyze.AnalyzeSentence)

	mux.HandleFunc("GET /{$}", health.Root)
	mux.HandleFunc("GET /health", health.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}
