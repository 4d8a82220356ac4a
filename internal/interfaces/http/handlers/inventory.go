package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	httpContracts "github.com/techflow/demandmock/internal/http"
	"github.com/techflow/demandmock/internal/ledger"
)

// InventoryLevels handles GET /api/v1/inventory/levels. The "all" filter
// (the default) advances depletion drift over every record before
// snapshotting; a scoped read returns one store untouched. Unknown stores
// yield the 404 envelope without mutating anything.
func (h *Handlers) InventoryLevels(w http.ResponseWriter, r *http.Request) {
	storeID := r.URL.Query().Get("store_id")
	if storeID == "" {
		storeID = "all"
	}

	if storeID == "all" {
		snapshot := h.ledger.ReadAll()
		h.metrics.DriftApplications.Inc()
		h.observeStock(snapshot)

		h.writeJSON(w, http.StatusOK, httpContracts.InventoryAllResponse{
			Status:    "success",
			Timestamp: time.Now().UTC(),
			Inventory: snapshot,
		})
		return
	}

	records, err := h.ledger.Read(storeID)
	if err != nil {
		if errors.Is(err, ledger.ErrStoreNotFound) {
			h.writeError(w, r, http.StatusNotFound, "Store not found")
			return
		}
		log.Error().Err(err).Str("store_id", storeID).Msg("Inventory read failed")
		h.writeError(w, r, http.StatusInternalServerError, "Inventory read failed")
		return
	}

	h.writeJSON(w, http.StatusOK, httpContracts.InventoryStoreResponse{
		Status:    "success",
		StoreID:   storeID,
		Inventory: records,
	})
}

// observeStock mirrors a ledger snapshot into the stock gauge.
func (h *Handlers) observeStock(snapshot ledger.Snapshot) {
	for store, records := range snapshot {
		for sku, rec := range records {
			h.metrics.CurrentStock.WithLabelValues(store, sku).Set(float64(rec.CurrentStock))
		}
	}
}
