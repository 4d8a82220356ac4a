// Package http defines the JSON contracts served by the mock telemetry API.
package http

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/techflow/demandmock/internal/ledger"
	"github.com/techflow/demandmock/internal/signals"
)

func init() {
	// Money fields go on the wire as bare JSON numbers, matching what the
	// consumers of the real telemetry platform parse.
	decimal.MarshalJSONWithoutQuotes = true
}

// SalesResponse is the realtime sales envelope.
type SalesResponse struct {
	Status    string              `json:"status"`
	Timestamp time.Time           `json:"timestamp"`
	Count     int                 `json:"count"`
	Sales     []signals.SaleEvent `json:"sales"`
}

// InventoryAllResponse is the full-ledger inventory envelope. Serving it is
// the only request path that advances depletion.
type InventoryAllResponse struct {
	Status    string          `json:"status"`
	Timestamp time.Time       `json:"timestamp"`
	Inventory ledger.Snapshot `json:"inventory"`
}

// InventoryStoreResponse is the single-store inventory envelope.
type InventoryStoreResponse struct {
	Status    string                   `json:"status"`
	StoreID   string                   `json:"store_id"`
	Inventory map[string]ledger.Record `json:"inventory"`
}

// CompetitorPricesResponse is the competitor pricing envelope.
type CompetitorPricesResponse struct {
	Status           string                             `json:"status"`
	Timestamp        time.Time                          `json:"timestamp"`
	CompetitorPrices map[string]signals.CompetitorQuote `json:"competitor_prices"`
}

// SocialMentionsResponse is the social sentiment envelope.
type SocialMentionsResponse struct {
	Status     string                               `json:"status"`
	Timestamp  time.Time                            `json:"timestamp"`
	SocialData map[string]signals.SentimentSnapshot `json:"social_data"`
}

// EconomicIndicatorsResponse is the macro indicator envelope.
type EconomicIndicatorsResponse struct {
	Status     string                            `json:"status"`
	Timestamp  time.Time                         `json:"timestamp"`
	Indicators map[string]signals.MacroIndicator `json:"indicators"`
}

// SupplyChainEventsResponse carries zero or one disruption alert.
type SupplyChainEventsResponse struct {
	Status       string                `json:"status"`
	Timestamp    time.Time             `json:"timestamp"`
	ActiveEvents []signals.SupplyEvent `json:"active_events"`
}

// ForecastAckResponse acknowledges a submitted demand forecast.
type ForecastAckResponse struct {
	Status           string    `json:"status"`
	Message          string    `json:"message"`
	ForecastID       string    `json:"forecast_id"`
	Timestamp        time.Time `json:"timestamp"`
	ReceivedProducts int       `json:"received_products"`
	ForecastHorizon  string    `json:"forecast_horizon"`
}

// WebhookAckResponse acknowledges a demand alert webhook.
type WebhookAckResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthResponse reports service liveness and the size of the emulated
// surface.
type HealthResponse struct {
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	UptimeSeconds float64   `json:"uptime_seconds"`
	Products      int       `json:"products"`
	Stores        int       `json:"stores"`
	RequestsTotal uint64    `json:"requests_total"`
}

// ErrorResponse is the uniform error envelope. The only domain error is an
// unknown store id on the scoped inventory read.
type ErrorResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}
