package signals

import (
	"math"
	"time"
)

// MacroIndicator is one sampled economic indicator reading.
type MacroIndicator struct {
	Value       float64   `json:"value"`
	Trend       string    `json:"trend"`
	LastUpdated time.Time `json:"last_updated"`
}

type indicatorRange struct {
	name string
	min  float64
	max  float64
}

// The fixed indicator set with its plausible ranges. No cross-indicator
// correlation is modeled.
var indicatorRanges = []indicatorRange{
	{"consumer_confidence_germany", 95, 110},
	{"unemployment_rate_eu", 6.5, 8.5},
	{"retail_sales_index", 98, 115},
	{"consumer_price_index", 102, 108},
}

var trends = []string{"rising", "falling", "stable"}

// MacroGenerator samples the four macroeconomic indicators.
type MacroGenerator struct {
	rng *Source
}

// NewMacroGenerator builds a macro indicator generator.
func NewMacroGenerator(rng *Source) *MacroGenerator {
	return &MacroGenerator{rng: rng}
}

// IndicatorNames returns the fixed set of indicator names.
func IndicatorNames() []string {
	names := make([]string, 0, len(indicatorRanges))
	for _, r := range indicatorRanges {
		names = append(names, r.name)
	}
	return names
}

// Generate samples each indicator uniformly within its own range, rounded
// to one decimal, with an independent trend draw.
func (g *MacroGenerator) Generate() map[string]MacroIndicator {
	now := time.Now().UTC()
	out := make(map[string]MacroIndicator, len(indicatorRanges))
	for _, r := range indicatorRanges {
		value := r.min + g.rng.Float64()*(r.max-r.min)
		out[r.name] = MacroIndicator{
			Value:       math.Round(value*10) / 10,
			Trend:       trends[g.rng.Intn(len(trends))],
			LastUpdated: now,
		}
	}
	return out
}
