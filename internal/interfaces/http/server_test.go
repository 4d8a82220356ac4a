package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techflow/demandmock/internal/catalog"
	"github.com/techflow/demandmock/internal/intake"
	"github.com/techflow/demandmock/internal/interfaces/http/handlers"
	"github.com/techflow/demandmock/internal/ledger"
	"github.com/techflow/demandmock/internal/metrics"
	"github.com/techflow/demandmock/internal/signals"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cat := catalog.Default()
	rng := signals.NewSource(1)
	registry := metrics.NewRegistry()

	handlerManager := handlers.NewHandlers(handlers.Deps{
		Catalog:     cat,
		Ledger:      ledger.New(cat, rng),
		Sales:       signals.NewSalesGenerator(cat, rng, 5, 20),
		Competitors: signals.NewCompetitorGenerator(cat, rng, []string{"amazon_de", "mediamarkt", "saturn"}),
		Sentiment:   signals.NewSentimentGenerator(cat, rng),
		Macro:       signals.NewMacroGenerator(rng),
		Supply:      signals.NewSupplyGenerator(rng, 0.3),
		Intake:      intake.New(rng),
		Metrics:     registry,
	})

	cfg := DefaultServerConfig()
	cfg.Port = 0 // let the kernel pick; tests drive the router directly

	server, err := NewServer(cfg, handlerManager, registry)
	require.NoError(t, err)
	return server
}

func doJSON(t *testing.T, s *Server, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	var response map[string]interface{}
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response),
			"response must be valid JSON: %s", w.Body.String())
	}
	return w, response
}

func TestTelemetryEndpoints(t *testing.T) {
	server := newTestServer(t)

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
		expectedFields []string
	}{
		{
			name:           "realtime_sales",
			method:         http.MethodGet,
			path:           "/api/v1/sales/realtime",
			expectedStatus: http.StatusOK,
			expectedFields: []string{"status", "timestamp", "count", "sales"},
		},
		{
			name:           "inventory_all",
			method:         http.MethodGet,
			path:           "/api/v1/inventory/levels",
			expectedStatus: http.StatusOK,
			expectedFields: []string{"status", "timestamp", "inventory"},
		},
		{
			name:           "inventory_known_store",
			method:         http.MethodGet,
			path:           "/api/v1/inventory/levels?store_id=DE_BERLIN_001",
			expectedStatus: http.StatusOK,
			expectedFields: []string{"status", "store_id", "inventory"},
		},
		{
			name:           "inventory_unknown_store",
			method:         http.MethodGet,
			path:           "/api/v1/inventory/levels?store_id=US_NYC_001",
			expectedStatus: http.StatusNotFound,
			expectedFields: []string{"status", "message"},
		},
		{
			name:           "competitor_prices",
			method:         http.MethodGet,
			path:           "/api/v1/competitors/prices",
			expectedStatus: http.StatusOK,
			expectedFields: []string{"status", "timestamp", "competitor_prices"},
		},
		{
			name:           "social_mentions",
			method:         http.MethodGet,
			path:           "/api/v1/social/mentions?timeframe=7d",
			expectedStatus: http.StatusOK,
			expectedFields: []string{"status", "timestamp", "social_data"},
		},
		{
			name:           "economic_indicators",
			method:         http.MethodGet,
			path:           "/api/v1/economic/indicators",
			expectedStatus: http.StatusOK,
			expectedFields: []string{"status", "timestamp", "indicators"},
		},
		{
			name:           "supply_chain_events",
			method:         http.MethodGet,
			path:           "/api/v1/events/supply_chain",
			expectedStatus: http.StatusOK,
			expectedFields: []string{"status", "timestamp", "active_events"},
		},
		{
			name:           "submit_forecast",
			method:         http.MethodPost,
			path:           "/api/v1/forecasts/demand",
			body:           `{"forecasts":[{"sku":"SONY_PS5_CONSOLE","expected_demand":12}],"forecast_horizon":"7d"}`,
			expectedStatus: http.StatusOK,
			expectedFields: []string{"status", "message", "forecast_id", "timestamp", "received_products", "forecast_horizon"},
		},
		{
			name:           "demand_alert_webhook",
			method:         http.MethodPost,
			path:           "/webhooks/demand_alert",
			body:           `{"alert_type":"stockout_risk","sku":"APPLE_AIRPODS_PRO2"}`,
			expectedStatus: http.StatusOK,
			expectedFields: []string{"status", "timestamp"},
		},
		{
			name:           "health",
			method:         http.MethodGet,
			path:           "/health",
			expectedStatus: http.StatusOK,
			expectedFields: []string{"status", "timestamp", "uptime_seconds", "products", "stores", "requests_total"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, response := doJSON(t, server, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

			for _, field := range tt.expectedFields {
				assert.Contains(t, response, field, "response should contain field %s", field)
			}
		})
	}
}

func TestRealtimeSalesPayload(t *testing.T) {
	server := newTestServer(t)
	w, response := doJSON(t, server, http.MethodGet, "/api/v1/sales/realtime", "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "success", response["status"])

	sales, ok := response["sales"].([]interface{})
	require.True(t, ok, "sales should be an array")
	assert.Equal(t, float64(len(sales)), response["count"])
	assert.GreaterOrEqual(t, len(sales), 5)
	assert.LessOrEqual(t, len(sales), 20)

	sale := sales[0].(map[string]interface{})
	for _, field := range []string{
		"timestamp", "store_id", "product_sku", "quantity_sold",
		"unit_price", "customer_segment", "payment_method", "total_revenue",
	} {
		assert.Contains(t, sale, field)
	}

	// Money fields ride as bare JSON numbers.
	_, isNumber := sale["unit_price"].(float64)
	assert.True(t, isNumber, "unit_price should be a JSON number")
}

func TestInventoryDriftOnlyOnAllFilter(t *testing.T) {
	server := newTestServer(t)

	_, scoped1 := doJSON(t, server, http.MethodGet, "/api/v1/inventory/levels?store_id=DE_MUNICH_002", "")
	_, scoped2 := doJSON(t, server, http.MethodGet, "/api/v1/inventory/levels?store_id=DE_MUNICH_002", "")
	assert.Equal(t, scoped1["inventory"], scoped2["inventory"],
		"scoped reads must not advance depletion")

	// Full reads deplete; stock never goes negative and never rises.
	prev := map[string]float64{}
	for i := 0; i < 50; i++ {
		w, response := doJSON(t, server, http.MethodGet, "/api/v1/inventory/levels", "")
		require.Equal(t, http.StatusOK, w.Code)

		inventory := response["inventory"].(map[string]interface{})
		for store, records := range inventory {
			for sku, raw := range records.(map[string]interface{}) {
				rec := raw.(map[string]interface{})
				stock := rec["current_stock"].(float64)
				assert.GreaterOrEqual(t, stock, float64(0))

				key := store + "/" + sku
				if last, seen := prev[key]; seen {
					assert.LessOrEqual(t, stock, last, "stock rose for %s", key)
				}
				prev[key] = stock
			}
		}
	}
}

func TestInventoryUnknownStoreDoesNotMutate(t *testing.T) {
	server := newTestServer(t)

	_, before := doJSON(t, server, http.MethodGet, "/api/v1/inventory/levels?store_id=FR_PARIS_001", "")

	w, response := doJSON(t, server, http.MethodGet, "/api/v1/inventory/levels?store_id=NOPE", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "error", response["status"])
	assert.Equal(t, "Store not found", response["message"])

	_, after := doJSON(t, server, http.MethodGet, "/api/v1/inventory/levels?store_id=FR_PARIS_001", "")
	assert.Equal(t, before["inventory"], after["inventory"])
}

func TestSocialMentionsTimeframe(t *testing.T) {
	server := newTestServer(t)

	_, response := doJSON(t, server, http.MethodGet, "/api/v1/social/mentions?timeframe=whatever-label", "")
	social := response["social_data"].(map[string]interface{})
	require.NotEmpty(t, social)
	for _, raw := range social {
		snap := raw.(map[string]interface{})
		assert.Equal(t, "whatever-label", snap["timeframe"])
	}

	// Default timeframe when the parameter is absent.
	_, response = doJSON(t, server, http.MethodGet, "/api/v1/social/mentions", "")
	for _, raw := range response["social_data"].(map[string]interface{}) {
		assert.Equal(t, "24h", raw.(map[string]interface{})["timeframe"])
	}
}

func TestSupplyChainEventsAtMostOne(t *testing.T) {
	server := newTestServer(t)

	for i := 0; i < 100; i++ {
		_, response := doJSON(t, server, http.MethodGet, "/api/v1/events/supply_chain", "")
		events := response["active_events"].([]interface{})
		assert.LessOrEqual(t, len(events), 1)
	}
}

func TestSubmitForecastDefaults(t *testing.T) {
	server := newTestServer(t)

	tests := []struct {
		name        string
		body        string
		wantCount   float64
		wantHorizon string
	}{
		{"empty_body", "", 0, "unknown"},
		{"empty_object", "{}", 0, "unknown"},
		{"malformed_json", "{not json", 0, "unknown"},
		{"counted_forecasts", `{"forecasts":[1,2,3]}`, 3, "unknown"},
		{"horizon_echo", `{"forecast_horizon":"6w"}`, 0, "6w"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, response := doJSON(t, server, http.MethodPost, "/api/v1/forecasts/demand", tt.body)
			require.Equal(t, http.StatusOK, w.Code, "intake never rejects input")

			assert.Equal(t, "success", response["status"])
			assert.Equal(t, tt.wantCount, response["received_products"])
			assert.Equal(t, tt.wantHorizon, response["forecast_horizon"])
			assert.Regexp(t, `^FORECAST_\d{5}$`, response["forecast_id"])
		})
	}
}

func TestWebhookAck(t *testing.T) {
	server := newTestServer(t)

	w, response := doJSON(t, server, http.MethodPost, "/webhooks/demand_alert", `{"anything":"goes"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "received", response["status"])
	assert.Contains(t, response, "timestamp")
}

func TestRouterErrorHandling(t *testing.T) {
	server := newTestServer(t)

	w, response := doJSON(t, server, http.MethodGet, "/api/v1/does/not/exist", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "error", response["status"])

	w, response = doJSON(t, server, http.MethodPost, "/api/v1/sales/realtime", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "error", response["status"])
}

func TestMetricsExposition(t *testing.T) {
	server := newTestServer(t)

	doJSON(t, server, http.MethodGet, "/api/v1/sales/realtime", "")
	doJSON(t, server, http.MethodGet, "/api/v1/inventory/levels", "")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	server.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "demandmock_requests_total")
	assert.Contains(t, body, "demandmock_inventory_drift_total 1")
	assert.Contains(t, body, "demandmock_inventory_current_stock")
}
