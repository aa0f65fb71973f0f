package rest

import (
	"net/http"
)

// HealthHandler serves the banner and health check endpoints.
type HealthHandler struct {
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

// bannerResponse is the JSON response for GET /.
type bannerResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// Root serves the service banner.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, bannerResponse{
		Message: "Welcome to DutchHelper API",
		Version: h.version,
	})
}

// Health is the liveness probe. The service has no stateful dependencies
// (the upstream LLM is intentionally excluded: a missing API key or a broken
// upstream degrades analysis, not the process), so it always reports healthy.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
