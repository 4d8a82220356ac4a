package handlers

import (
	"net/http"
	"time"

	httpContracts "github.com/techflow/demandmock/internal/http"
)

// Health handles GET /health.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	h.writeJSON(w, http.StatusOK, httpContracts.HealthResponse{
		Status:        "healthy",
		Timestamp:     now,
		UptimeSeconds: now.Sub(h.startTime).Seconds(),
		Products:      h.catalog.Len(),
		Stores:        len(h.catalog.Stores()),
		RequestsTotal: h.metrics.TotalRequests(),
	})
}
