package handlers

import (
	"net/http"
	"time"

	httpContracts "github.com/techflow/demandmock/internal/http"
)

// CompetitorPrices handles GET /api/v1/competitors/prices.
func (h *Handlers) CompetitorPrices(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, httpContracts.CompetitorPricesResponse{
		Status:           "success",
		Timestamp:        time.Now().UTC(),
		CompetitorPrices: h.competitors.Generate(),
	})
}
