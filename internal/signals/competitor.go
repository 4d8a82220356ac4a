package signals

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/techflow/demandmock/internal/catalog"
)

// CompetitorEntry is one competitor's quote for a product.
type CompetitorEntry struct {
	Price       decimal.Decimal `json:"price"`
	StockStatus string          `json:"stock_status"`
	LastUpdated time.Time       `json:"last_updated"`
}

// CompetitorQuote pairs the catalog price with per-competitor quotes.
type CompetitorQuote struct {
	OurPrice    decimal.Decimal            `json:"our_price"`
	Competitors map[string]CompetitorEntry `json:"competitors"`
}

var stockStatuses = []string{"in_stock", "low_stock", "out_of_stock"}

// CompetitorGenerator samples competitor quotes correlated with catalog
// prices. It keeps no competitor state between calls.
type CompetitorGenerator struct {
	catalog     *catalog.Catalog
	rng         *Source
	competitors []string
}

// NewCompetitorGenerator builds a generator over the fixed competitor set.
func NewCompetitorGenerator(cat *catalog.Catalog, rng *Source, competitors []string) *CompetitorGenerator {
	return &CompetitorGenerator{catalog: cat, rng: rng, competitors: competitors}
}

// Generate samples a quote for every product x competitor pair. Each
// competitor price deviates at most 15% from the catalog price and is
// rounded to cents.
func (g *CompetitorGenerator) Generate() map[string]CompetitorQuote {
	now := time.Now().UTC()
	out := make(map[string]CompetitorQuote, g.catalog.Len())

	for _, product := range g.catalog.Products() {
		entries := make(map[string]CompetitorEntry, len(g.competitors))
		for _, name := range g.competitors {
			deviation := g.rng.Float64()*0.30 - 0.15
			price := product.UnitPrice.
				Mul(decimal.NewFromFloat(1 + deviation)).
				Round(2)

			entries[name] = CompetitorEntry{
				Price:       price,
				StockStatus: stockStatuses[g.rng.Intn(len(stockStatuses))],
				LastUpdated: now,
			}
		}
		out[product.SKU] = CompetitorQuote{
			OurPrice:    product.UnitPrice,
			Competitors: entries,
		}
	}
	return out
}
