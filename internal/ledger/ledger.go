// Package ledger records sales. It turns a requested list of product lines
// into a committed, internally consistent Sale and applies the matching
// stock decrements to the catalog.
package ledger

import (
	"sync"
	"time"

	"almacen-pos/internal/catalog"
	"almacen-pos/internal/models"
	"almacen-pos/internal/storage"
	logx "almacen-pos/pkg/logger"

	"github.com/google/uuid"
)

// Ledger is the append-only sale history. Insertion order is chronological.
type Ledger struct {
	mu      sync.RWMutex
	sales   []models.Sale
	kv      storage.KV
	catalog *catalog.Store
}

// New loads the persisted ledger, or starts empty.
func New(kv storage.KV, cat *catalog.Store) *Ledger {
	return &Ledger{
		sales:   storage.LoadSales(kv),
		kv:      kv,
		catalog: cat,
	}
}

// resolution tags the outcome of matching one requested line against the
// catalog, so dropped lines are explicit instead of filtered nils.
type resolution struct {
	requestedID string
	item        models.SaleItem
	ok          bool
}

func (l *Ledger) resolve(lines []models.SaleLine) []resolution {
	out := make([]resolution, 0, len(lines))
	for _, line := range lines {
		product, found := l.catalog.FindByID(line.ProductID)
		if !found {
			out = append(out, resolution{requestedID: line.ProductID})
			continue
		}
		out = append(out, resolution{
			requestedID: line.ProductID,
			ok:          true,
			item: models.SaleItem{
				ProductID:   product.ID,
				Quantity:    line.Quantity,
				PriceAtSale: product.SellingPrice,
				CostAtSale:  product.CostPrice,
			},
		})
	}
	return out
}

// RecordSale commits the resolvable subset of the requested lines.
//
// Lines whose product id is unknown are dropped; if every line is dropped
// the whole request is rejected with ErrEmptySale and nothing is mutated.
// Prices are frozen at resolution time, so later catalog edits never change
// a committed sale. Stock is decremented per line, clamped at zero: there is
// deliberately no availability check, a sale must never be blocked by a
// data-entry inconsistency.
func (l *Ledger) RecordSale(lines []models.SaleLine) (models.Sale, error) {
	for _, line := range lines {
		if line.Quantity <= 0 {
			return models.Sale{}, &ValidationError{ProductID: line.ProductID, Reason: "quantity must be a positive integer"}
		}
	}

	items := make([]models.SaleItem, 0, len(lines))
	for _, res := range l.resolve(lines) {
		if !res.ok {
			logx.Debug().Str("product_id", res.requestedID).Msg("dropping unresolved sale line")
			continue
		}
		items = append(items, res.item)
	}
	if len(items) == 0 {
		return models.Sale{}, ErrEmptySale
	}

	var amount, profit float64
	for _, item := range items {
		amount += item.PriceAtSale * float64(item.Quantity)
		profit += (item.PriceAtSale - item.CostAtSale) * float64(item.Quantity)
	}

	sale := models.Sale{
		ID:          uuid.NewString(),
		Timestamp:   time.Now(),
		Items:       items,
		TotalAmount: amount,
		TotalProfit: profit,
	}

	l.mu.Lock()
	l.sales = append(l.sales, sale)
	l.persist()
	l.mu.Unlock()

	l.catalog.ApplySale(items, sale.Timestamp)

	logx.Info().
		Str("sale_id", sale.ID).
		Int("items", len(items)).
		Float64("total", sale.TotalAmount).
		Msg("sale recorded")
	return sale, nil
}

// All returns a copy of the ledger in chronological order.
func (l *Ledger) All() []models.Sale {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Sale, len(l.sales))
	copy(out, l.sales)
	return out
}

// Recent returns up to n sales, newest first.
func (l *Ledger) Recent(n int) []models.Sale {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if n > len(l.sales) {
		n = len(l.sales)
	}
	out := make([]models.Sale, 0, n)
	for i := len(l.sales) - 1; i >= len(l.sales)-n; i-- {
		out = append(out, l.sales[i])
	}
	return out
}

// persist must be called with the write lock held.
func (l *Ledger) persist() {
	if err := storage.SaveSales(l.kv, l.sales); err != nil {
		logx.Error().Err(err).Msg("failed to persist ledger")
	}
}
