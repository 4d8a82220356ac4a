package handlers

import (
	"net/http"
	"time"

	httpContracts "github.com/techflow/demandmock/internal/http"
)

// SubmitForecast handles POST /api/v1/forecasts/demand. The endpoint is an
// acknowledger, not a validator: any body, including none at all, is
// accepted and receipted.
func (h *Handlers) SubmitForecast(w http.ResponseWriter, r *http.Request) {
	ack := h.intake.AcceptForecast(decodeBody(r))
	h.metrics.ForecastsReceived.Inc()

	h.writeJSON(w, http.StatusOK, httpContracts.ForecastAckResponse{
		Status:           "success",
		Message:          "Forecast received and stored",
		ForecastID:       ack.ForecastID,
		Timestamp:        time.Now().UTC(),
		ReceivedProducts: ack.ReceivedProducts,
		ForecastHorizon:  ack.ForecastHorizon,
	})
}

// DemandAlertWebhook handles POST /webhooks/demand_alert. The payload is
// logged for observability and acknowledged; nothing is stored.
func (h *Handlers) DemandAlertWebhook(w http.ResponseWriter, r *http.Request) {
	h.intake.ReceiveAlert(decodeBody(r))

	h.writeJSON(w, http.StatusOK, httpContracts.WebhookAckResponse{
		Status:    "received",
		Timestamp: time.Now().UTC(),
	})
}
