// Package alerts derives low-stock and low-margin views over the catalog.
// Everything here is recomputed on read; the catalog is small and stale
// alerts are never acceptable.
package alerts

import (
	"math"

	"almacen-pos/internal/catalog"
	"almacen-pos/internal/models"
)

// DefaultLowMarginThreshold flags products earning less than 15% of the
// selling price.
const DefaultLowMarginThreshold = 0.15

// Classifier answers alert queries against the live catalog.
type Classifier struct {
	catalog   *catalog.Store
	threshold float64
}

// New builds a classifier. A non-positive threshold falls back to the
// default.
func New(cat *catalog.Store, lowMarginThreshold float64) *Classifier {
	if lowMarginThreshold <= 0 {
		lowMarginThreshold = DefaultLowMarginThreshold
	}
	return &Classifier{catalog: cat, threshold: lowMarginThreshold}
}

// LowStock returns the products at or below their alert threshold, in
// catalog insertion order.
func (c *Classifier) LowStock() []models.Product {
	var out []models.Product
	for _, p := range c.catalog.All() {
		if p.Stock <= p.MinStockAlert {
			out = append(out, p)
		}
	}
	return out
}

// LowMargin returns the products whose margin is below the threshold.
// Products with a zero selling price have no defined margin and are skipped.
func (c *Classifier) LowMargin() []models.Product {
	var out []models.Product
	for _, p := range c.catalog.All() {
		margin, ok := p.Margin()
		if ok && margin < c.threshold {
			out = append(out, p)
		}
	}
	return out
}

// Count is the alert badge value. A product that is both low-stock and
// low-margin counts twice; the badge is additive on purpose.
func (c *Classifier) Count() int {
	return len(c.LowStock()) + len(c.LowMargin())
}

// SuggestedPrice proposes a repaired selling price of cost plus 30%,
// rounded up to a whole amount.
func SuggestedPrice(p models.Product) float64 {
	return math.Ceil(p.CostPrice * 1.3)
}
