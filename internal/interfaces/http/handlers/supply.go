package handlers

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	httpContracts "github.com/techflow/demandmock/internal/http"
)

// SupplyChainEvents handles GET /api/v1/events/supply_chain. Each poll is
// an independent Bernoulli trial; no alert stays active across polls.
func (h *Handlers) SupplyChainEvents(w http.ResponseWriter, r *http.Request) {
	events := h.supply.Generate()
	if len(events) > 0 {
		h.metrics.SupplyEventsEmitted.Inc()
		log.Info().
			Str("event_id", events[0].EventID).
			Str("type", events[0].Type).
			Str("severity", events[0].Severity).
			Msg("Supply-chain disruption emitted")
	}

	h.writeJSON(w, http.StatusOK, httpContracts.SupplyChainEventsResponse{
		Status:       "success",
		Timestamp:    time.Now().UTC(),
		ActiveEvents: events,
	})
}
