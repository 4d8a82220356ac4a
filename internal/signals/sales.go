// Package signals generates the synthetic telemetry surface: sales events,
// competitor quotes, social sentiment, macro indicators and supply-chain
// disruptions. Every generator is a pure function of the catalog plus an
// injected random source; only the inventory ledger carries state.
package signals

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/techflow/demandmock/internal/catalog"
)

// SaleEvent is a single synthetic point-of-sale transaction. Events carry
// no identity and are never stored.
type SaleEvent struct {
	Timestamp       time.Time       `json:"timestamp"`
	StoreID         string          `json:"store_id"`
	ProductSKU      string          `json:"product_sku"`
	QuantitySold    int             `json:"quantity_sold"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	PromotionCode   string          `json:"promotion_code,omitempty"`
	CustomerSegment string          `json:"customer_segment"`
	PaymentMethod   string          `json:"payment_method"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
}

var (
	// Weighted promotion pool: "none" carries triple the weight of either
	// discount code.
	promotionPool = []string{"", "SUMMER10", "STUDENT15", "", ""}

	customerSegments = []string{"consumer", "business", "student"}
	paymentMethods   = []string{"credit_card", "debit_card", "paypal", "cash"}

	discountFactors = map[string]decimal.Decimal{
		"SUMMER10":  decimal.RequireFromString("0.9"),
		"STUDENT15": decimal.RequireFromString("0.85"),
	}
)

// DiscountFactor returns the exact multiplicative factor for a promotion
// code. Unknown or empty codes apply no discount.
func DiscountFactor(code string) decimal.Decimal {
	if f, ok := discountFactors[code]; ok {
		return f
	}
	return decimal.NewFromInt(1)
}

// SalesGenerator produces a batch of fresh sale events per call.
type SalesGenerator struct {
	catalog   *catalog.Catalog
	rng       *Source
	minEvents int
	maxEvents int
}

// NewSalesGenerator builds a generator emitting between minEvents and
// maxEvents sale events per call.
func NewSalesGenerator(cat *catalog.Catalog, rng *Source, minEvents, maxEvents int) *SalesGenerator {
	return &SalesGenerator{catalog: cat, rng: rng, minEvents: minEvents, maxEvents: maxEvents}
}

// Generate samples a batch of sale events over the trailing hour. Revenue
// is derived, not sampled: quantity x unit price x promotion factor.
func (g *SalesGenerator) Generate() []SaleEvent {
	now := time.Now().UTC()
	count := g.rng.IntBetween(g.minEvents, g.maxEvents)
	skus := g.catalog.SKUs()
	stores := g.catalog.Stores()

	events := make([]SaleEvent, 0, count)
	for i := 0; i < count; i++ {
		sku := skus[g.rng.Intn(len(skus))]
		product, _ := g.catalog.Product(sku)

		quantity := g.rng.IntBetween(1, 3)
		promotion := promotionPool[g.rng.Intn(len(promotionPool))]

		revenue := product.UnitPrice.
			Mul(decimal.NewFromInt(int64(quantity))).
			Mul(DiscountFactor(promotion))

		events = append(events, SaleEvent{
			Timestamp:       now.Add(-time.Duration(g.rng.Intn(61)) * time.Minute),
			StoreID:         stores[g.rng.Intn(len(stores))],
			ProductSKU:      sku,
			QuantitySold:    quantity,
			UnitPrice:       product.UnitPrice,
			PromotionCode:   promotion,
			CustomerSegment: customerSegments[g.rng.Intn(len(customerSegments))],
			PaymentMethod:   paymentMethods[g.rng.Intn(len(paymentMethods))],
			TotalRevenue:    revenue,
		})
	}
	return events
}
