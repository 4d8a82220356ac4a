// Package catalog holds the immutable product and store registry that every
// signal generator draws from.
package catalog

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Product is a sellable item with its base attributes. Products are created
// once at startup and never mutated.
type Product struct {
	SKU       string          `json:"sku"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Category  string          `json:"category"`
	Brand     string          `json:"brand"`
}

// Catalog is a read-only registry of products and stores.
type Catalog struct {
	products map[string]Product
	skus     []string
	stores   []string
}

// New builds a catalog from the given products and store identifiers.
func New(products []Product, stores []string) (*Catalog, error) {
	if len(products) == 0 {
		return nil, fmt.Errorf("catalog requires at least one product")
	}
	if len(stores) == 0 {
		return nil, fmt.Errorf("catalog requires at least one store")
	}

	bySKU := make(map[string]Product, len(products))
	skus := make([]string, 0, len(products))
	for _, p := range products {
		if p.SKU == "" {
			return nil, fmt.Errorf("product with empty sku")
		}
		if !p.UnitPrice.IsPositive() {
			return nil, fmt.Errorf("product %s: unit price must be positive, got %s", p.SKU, p.UnitPrice)
		}
		if _, dup := bySKU[p.SKU]; dup {
			return nil, fmt.Errorf("duplicate sku %s", p.SKU)
		}
		bySKU[p.SKU] = p
		skus = append(skus, p.SKU)
	}
	sort.Strings(skus)

	storeSet := make(map[string]bool, len(stores))
	for _, s := range stores {
		if s == "" {
			return nil, fmt.Errorf("store with empty identifier")
		}
		if storeSet[s] {
			return nil, fmt.Errorf("duplicate store %s", s)
		}
		storeSet[s] = true
	}

	return &Catalog{
		products: bySKU,
		skus:     skus,
		stores:   append([]string(nil), stores...),
	}, nil
}

// Default returns the reference deployment catalog: four electronics SKUs
// across three European stores.
func Default() *Catalog {
	c, err := New([]Product{
		{SKU: "APPLE_IPHONE15_128GB", UnitPrice: decimal.RequireFromString("899.99"), Category: "smartphones", Brand: "Apple"},
		{SKU: "SAMSUNG_GALAXY_S24", UnitPrice: decimal.RequireFromString("799.99"), Category: "smartphones", Brand: "Samsung"},
		{SKU: "SONY_PS5_CONSOLE", UnitPrice: decimal.RequireFromString("499.99"), Category: "gaming", Brand: "Sony"},
		{SKU: "APPLE_AIRPODS_PRO2", UnitPrice: decimal.RequireFromString("249.99"), Category: "accessories", Brand: "Apple"},
	}, []string{"DE_BERLIN_001", "DE_MUNICH_002", "FR_PARIS_001"})
	if err != nil {
		panic(err)
	}
	return c
}

// Product looks up a product by sku.
func (c *Catalog) Product(sku string) (Product, bool) {
	p, ok := c.products[sku]
	return p, ok
}

// SKUs returns all product identifiers in stable (sorted) order.
func (c *Catalog) SKUs() []string {
	return append([]string(nil), c.skus...)
}

// Products returns all products in stable sku order.
func (c *Catalog) Products() []Product {
	out := make([]Product, 0, len(c.skus))
	for _, sku := range c.skus {
		out = append(out, c.products[sku])
	}
	return out
}

// Stores returns the fixed store identifiers.
func (c *Catalog) Stores() []string {
	return append([]string(nil), c.stores...)
}

// HasStore reports whether the store id belongs to the fixed store set.
func (c *Catalog) HasStore(id string) bool {
	for _, s := range c.stores {
		if s == id {
			return true
		}
	}
	return false
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.skus)
}
