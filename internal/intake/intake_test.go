package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/techflow/demandmock/internal/signals"
)

func TestAcceptForecastDefaults(t *testing.T) {
	in := New(signals.NewSource(1))

	tests := []struct {
		name        string
		payload     map[string]any
		wantCount   int
		wantHorizon string
	}{
		{"empty_payload", map[string]any{}, 0, "unknown"},
		{"nil_payload", nil, 0, "unknown"},
		{
			"forecasts_counted_not_inspected",
			map[string]any{"forecasts": []any{"anything", 42, nil}},
			3, "unknown",
		},
		{
			"horizon_echoed",
			map[string]any{"forecast_horizon": "14d"},
			0, "14d",
		},
		{
			"full_payload",
			map[string]any{
				"forecasts":        []any{map[string]any{"sku": "X"}},
				"forecast_horizon": "4w",
			},
			1, "4w",
		},
		{
			"wrong_types_default",
			map[string]any{"forecasts": "not-a-list", "forecast_horizon": 12},
			0, "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ack := in.AcceptForecast(tt.payload)
			assert.Equal(t, tt.wantCount, ack.ReceivedProducts)
			assert.Equal(t, tt.wantHorizon, ack.ForecastHorizon)
			assert.Regexp(t, `^FORECAST_\d{5}$`, ack.ForecastID)
		})
	}
}

func TestForecastIDsVary(t *testing.T) {
	in := New(signals.NewSource(2))

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[in.AcceptForecast(nil).ForecastID] = true
	}
	assert.Greater(t, len(seen), 90, "ids should be effectively unique per call")
}
