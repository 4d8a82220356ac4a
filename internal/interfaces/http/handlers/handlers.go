// Package handlers implements the HTTP endpoint handlers for the mock
// telemetry surface.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/techflow/demandmock/internal/catalog"
	httpContracts "github.com/techflow/demandmock/internal/http"
	"github.com/techflow/demandmock/internal/intake"
	"github.com/techflow/demandmock/internal/ledger"
	"github.com/techflow/demandmock/internal/metrics"
	"github.com/techflow/demandmock/internal/signals"
)

// Handlers manages all HTTP endpoint handlers and their dependencies.
type Handlers struct {
	catalog     *catalog.Catalog
	ledger      *ledger.Ledger
	sales       *signals.SalesGenerator
	competitors *signals.CompetitorGenerator
	sentiment   *signals.SentimentGenerator
	macro       *signals.MacroGenerator
	supply      *signals.SupplyGenerator
	intake      *intake.Intake
	metrics     *metrics.Registry
	startTime   time.Time
}

// Deps carries everything the handlers serve from.
type Deps struct {
	Catalog     *catalog.Catalog
	Ledger      *ledger.Ledger
	Sales       *signals.SalesGenerator
	Competitors *signals.CompetitorGenerator
	Sentiment   *signals.SentimentGenerator
	Macro       *signals.MacroGenerator
	Supply      *signals.SupplyGenerator
	Intake      *intake.Intake
	Metrics     *metrics.Registry
}

// NewHandlers creates a new handlers instance.
func NewHandlers(deps Deps) *Handlers {
	return &Handlers{
		catalog:     deps.Catalog,
		ledger:      deps.Ledger,
		sales:       deps.Sales,
		competitors: deps.Competitors,
		sentiment:   deps.Sentiment,
		macro:       deps.Macro,
		supply:      deps.Supply,
		intake:      deps.Intake,
		metrics:     deps.Metrics,
		startTime:   time.Now().UTC(),
	}
}

// writeJSON writes a JSON response with proper error handling.
func (h *Handlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"status":"error","message":"json encoding failed"}`, http.StatusInternalServerError)
	}
}

// writeError writes the standardized error envelope.
func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	requestID, _ := r.Context().Value("request_id").(string)
	h.writeJSON(w, status, httpContracts.ErrorResponse{
		Status:    "error",
		Message:   message,
		RequestID: requestID,
	})
}

// decodeBody tolerantly decodes a JSON object body. Malformed or empty
// bodies yield an empty payload rather than an error; the intake endpoints
// never reject input.
func decodeBody(r *http.Request) map[string]any {
	var payload map[string]any
	if r.Body == nil {
		return payload
	}
	defer r.Body.Close()
	_ = json.NewDecoder(r.Body).Decode(&payload)
	return payload
}

// NotFound handles 404 responses for unrouted paths.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	h.writeError(w, r, http.StatusNotFound, "The requested endpoint does not exist")
}

// MethodNotAllowed handles 405 responses.
func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	h.writeError(w, r, http.StatusMethodNotAllowed, "Method not allowed for this endpoint")
}
