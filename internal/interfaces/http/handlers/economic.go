package handlers

import (
	"net/http"
	"time"

	httpContracts "github.com/techflow/demandmock/internal/http"
)

// EconomicIndicators handles GET /api/v1/economic/indicators.
func (h *Handlers) EconomicIndicators(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, httpContracts.EconomicIndicatorsResponse{
		Status:     "success",
		Timestamp:  time.Now().UTC(),
		Indicators: h.macro.Generate(),
	})
}
