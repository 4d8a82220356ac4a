package signals

import (
	"fmt"
	"time"
)

// SupplyEvent is a one-shot supply-chain disruption alert. Events are
// independent per poll; nothing stays "active" across calls.
type SupplyEvent struct {
	EventID            string    `json:"event_id"`
	Type               string    `json:"type"`
	Description        string    `json:"description"`
	Severity           string    `json:"severity"`
	AffectedCategories []string  `json:"affected_categories"`
	EstimatedDuration  string    `json:"estimated_duration"`
	Timestamp          time.Time `json:"timestamp"`
}

// supplyTemplates is the fixed disruption catalog.
var supplyTemplates = []SupplyEvent{
	{
		Type:               "shipping_delay",
		Description:        "Port congestion in Hamburg causing 3-5 day delays",
		Severity:           "medium",
		AffectedCategories: []string{"smartphones", "laptops"},
		EstimatedDuration:  "5-7 days",
	},
	{
		Type:               "supplier_disruption",
		Description:        "Foxconn facility operating at reduced capacity",
		Severity:           "high",
		AffectedCategories: []string{"smartphones"},
		EstimatedDuration:  "2-3 weeks",
	},
	{
		Type:               "raw_material_shortage",
		Description:        "Semiconductor shortage affecting production",
		Severity:           "high",
		AffectedCategories: []string{"all_electronics"},
		EstimatedDuration:  "4-6 weeks",
	},
}

// SupplyGenerator emits at most one disruption event per call.
type SupplyGenerator struct {
	rng         *Source
	probability float64
}

// NewSupplyGenerator builds a generator emitting an event with the given
// per-call probability.
func NewSupplyGenerator(rng *Source, probability float64) *SupplyGenerator {
	return &SupplyGenerator{rng: rng, probability: probability}
}

// Generate runs one Bernoulli trial. On success it stamps a template copy
// with the current time and a fresh opaque event id.
func (g *SupplyGenerator) Generate() []SupplyEvent {
	if g.rng.Float64() >= g.probability {
		return []SupplyEvent{}
	}

	event := supplyTemplates[g.rng.Intn(len(supplyTemplates))]
	event.AffectedCategories = append([]string(nil), event.AffectedCategories...)
	event.EventID = fmt.Sprintf("EVENT_%d", g.rng.IntBetween(1000, 9999))
	event.Timestamp = time.Now().UTC()
	return []SupplyEvent{event}
}
