// Package intake acknowledges externally produced payloads: demand
// forecasts and alert webhooks. It validates nothing and stores nothing;
// the acknowledgement is the entire contract.
package intake

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Rand supplies the draws for acknowledgement identifiers.
type Rand interface {
	IntBetween(min, max int) int
}

// ForecastAck is the receipt returned for a submitted forecast.
type ForecastAck struct {
	ForecastID       string
	ReceivedProducts int
	ForecastHorizon  string
}

// Intake accepts forecast submissions and demand alerts.
type Intake struct {
	rng Rand
}

// New builds an intake acknowledger.
func New(rng Rand) *Intake {
	return &Intake{rng: rng}
}

// AcceptForecast extracts what it can from an arbitrary payload and
// acknowledges. Missing or malformed fields default rather than fail: the
// forecasts list is only counted, never inspected, and an absent horizon
// becomes "unknown".
func (i *Intake) AcceptForecast(payload map[string]any) ForecastAck {
	ack := ForecastAck{
		ForecastID:      fmt.Sprintf("FORECAST_%d", i.rng.IntBetween(10000, 99999)),
		ForecastHorizon: "unknown",
	}

	if forecasts, ok := payload["forecasts"].([]any); ok {
		ack.ReceivedProducts = len(forecasts)
	}
	if horizon, ok := payload["forecast_horizon"].(string); ok && horizon != "" {
		ack.ForecastHorizon = horizon
	}

	log.Info().
		Str("forecast_id", ack.ForecastID).
		Int("received_products", ack.ReceivedProducts).
		Str("forecast_horizon", ack.ForecastHorizon).
		Msg("Forecast received")

	return ack
}

// ReceiveAlert logs a demand alert payload for observability and
// acknowledges it. No validation, no storage.
func (i *Intake) ReceiveAlert(payload map[string]any) {
	log.Info().
		Interface("alert", payload).
		Msg("Demand alert webhook received")
}
