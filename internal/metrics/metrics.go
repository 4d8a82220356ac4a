// Package metrics exposes the service's Prometheus instrumentation.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
)

// Registry holds all Prometheus metrics for the mock service. Each server
// owns its own registry so tests never trip duplicate registration.
type Registry struct {
	registry *prometheus.Registry

	// RequestsTotal counts served requests by route and status class.
	RequestsTotal *prometheus.CounterVec

	// RequestDuration tracks handler latency by route.
	RequestDuration *prometheus.HistogramVec

	// DriftApplications counts full-ledger reads that advanced depletion.
	DriftApplications prometheus.Counter

	// CurrentStock mirrors the last ledger snapshot per (store, sku).
	CurrentStock *prometheus.GaugeVec

	// SupplyEventsEmitted counts polls whose Bernoulli trial fired.
	SupplyEventsEmitted prometheus.Counter

	// ForecastsReceived counts acknowledged forecast submissions.
	ForecastsReceived prometheus.Counter
}

// NewRegistry creates a registry with all demandmock metrics registered.
func NewRegistry() *Registry {
	m := &Registry{
		registry: prometheus.NewRegistry(),

		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "demandmock_requests_total",
				Help: "Total HTTP requests served by route and status",
			},
			[]string{"route", "status"},
		),

		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "demandmock_request_duration_seconds",
				Help:    "Handler latency in seconds by route",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
			},
			[]string{"route"},
		),

		DriftApplications: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "demandmock_inventory_drift_total",
				Help: "Total full-ledger reads that applied depletion drift",
			},
		),

		CurrentStock: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "demandmock_inventory_current_stock",
				Help: "Current stock level per store and sku as of the last snapshot",
			},
			[]string{"store", "sku"},
		),

		SupplyEventsEmitted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "demandmock_supply_events_emitted_total",
				Help: "Total supply-chain disruption events emitted",
			},
		),

		ForecastsReceived: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "demandmock_forecasts_received_total",
				Help: "Total forecast submissions acknowledged",
			},
		),
	}

	m.registry.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.DriftApplications,
		m.CurrentStock,
		m.SupplyEventsEmitted,
		m.ForecastsReceived,
	)

	return m
}

// Handler returns the Prometheus exposition handler for this registry.
func (m *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// TotalRequests sums the request counter across all routes and statuses
// from the gathered metric families.
func (m *Registry) TotalRequests() uint64 {
	families, err := m.registry.Gather()
	if err != nil {
		return 0
	}

	var total float64
	for _, family := range families {
		if family.GetName() != "demandmock_requests_total" {
			continue
		}
		if family.GetType() != dto.MetricType_COUNTER {
			continue
		}
		for _, metric := range family.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
	}
	return uint64(total)
}
