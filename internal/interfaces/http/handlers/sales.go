package handlers

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	httpContracts "github.com/techflow/demandmock/internal/http"
)

// RealtimeSales handles GET /api/v1/sales/realtime. Every poll fabricates a
// fresh batch of sale events over the trailing hour.
func (h *Handlers) RealtimeSales(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	events := h.sales.Generate()

	log.Debug().
		Int("count", len(events)).
		Dur("duration", time.Since(start)).
		Msg("Realtime sales served")

	h.writeJSON(w, http.StatusOK, httpContracts.SalesResponse{
		Status:    "success",
		Timestamp: time.Now().UTC(),
		Count:     len(events),
		Sales:     events,
	})
}
