// Package catalog owns the product list and every stock adjustment.
package catalog

import (
	"strings"
	"sync"
	"time"

	"almacen-pos/internal/models"
	"almacen-pos/internal/storage"
	logx "almacen-pos/pkg/logger"

	"github.com/google/uuid"
)

// Store is the authoritative product collection. Mutations flush to the
// injected KV after they commit; a flush failure is logged, never returned,
// since persistence is not part of the mutation contract.
type Store struct {
	mu       sync.RWMutex
	products []models.Product
	kv       storage.KV
}

// New loads the catalog from kv, falling back to the seed catalog when
// nothing usable is persisted.
func New(kv storage.KV) *Store {
	return &Store{
		products: storage.LoadProducts(kv),
		kv:       kv,
	}
}

// ProductInput is what a caller supplies to create a product.
type ProductInput struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	CostPrice     float64 `json:"cost_price"`
	SellingPrice  float64 `json:"selling_price"`
	Stock         int     `json:"stock"`
	MinStockAlert int     `json:"min_stock_alert"`
	Supplier      string  `json:"supplier"`
	ImageURL      string  `json:"image_url"`
}

func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if in.CostPrice < 0 {
		return &ValidationError{Field: "cost_price", Reason: "must not be negative"}
	}
	if in.SellingPrice < 0 {
		return &ValidationError{Field: "selling_price", Reason: "must not be negative"}
	}
	if in.Stock < 0 {
		return &ValidationError{Field: "stock", Reason: "must not be negative"}
	}
	if in.MinStockAlert < 0 {
		return &ValidationError{Field: "min_stock_alert", Reason: "must not be negative"}
	}
	return nil
}

// Add validates the input, assigns a fresh id and appends the product.
func (s *Store) Add(in ProductInput) (models.Product, error) {
	if err := in.validate(); err != nil {
		return models.Product{}, err
	}

	p := models.Product{
		ID:            uuid.NewString(),
		Name:          strings.TrimSpace(in.Name),
		Category:      in.Category,
		CostPrice:     in.CostPrice,
		SellingPrice:  in.SellingPrice,
		Stock:         in.Stock,
		MinStockAlert: in.MinStockAlert,
		Supplier:      in.Supplier,
		ImageURL:      in.ImageURL,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
	s.persist()
	return p, nil
}

// ProductPatch updates only the fields that are set. A stock value below
// zero is clamped, never rejected.
type ProductPatch struct {
	Name          *string  `json:"name"`
	Category      *string  `json:"category"`
	CostPrice     *float64 `json:"cost_price"`
	SellingPrice  *float64 `json:"selling_price"`
	Stock         *int     `json:"stock"`
	MinStockAlert *int     `json:"min_stock_alert"`
	Supplier      *string  `json:"supplier"`
	ImageURL      *string  `json:"image_url"`
}

// Update applies the patch to the product with the given id.
func (s *Store) Update(id string, patch ProductPatch) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Product{}, ErrNotFound
	}

	p := &s.products[i]
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.CostPrice != nil {
		p.CostPrice = *patch.CostPrice
	}
	if patch.SellingPrice != nil {
		p.SellingPrice = *patch.SellingPrice
	}
	if patch.Stock != nil {
		p.Stock = max(0, *patch.Stock)
	}
	if patch.MinStockAlert != nil {
		p.MinStockAlert = *patch.MinStockAlert
	}
	if patch.Supplier != nil {
		p.Supplier = *patch.Supplier
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}

	s.persist()
	return *p, nil
}

// AdjustStock shifts the product's stock by delta, clamped at zero. A
// negative delta counts as a sale and stamps LastSoldAt.
func (s *Store) AdjustStock(id string, delta int) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Product{}, ErrNotFound
	}

	p := &s.products[i]
	p.Stock = max(0, p.Stock+delta)
	if delta < 0 {
		now := time.Now()
		p.LastSoldAt = &now
	}

	s.persist()
	return *p, nil
}

// ApplySale decrements stock for every line of a committed sale and stamps
// LastSoldAt with the sale timestamp. One lock, one flush, so a sale's stock
// effects land together.
func (s *Store) ApplySale(items []models.SaleItem, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range items {
		i := s.indexOf(item.ProductID)
		if i < 0 {
			continue
		}
		p := &s.products[i]
		p.Stock = max(0, p.Stock-item.Quantity)
		soldAt := at
		p.LastSoldAt = &soldAt
	}

	s.persist()
}

// FindByID returns the product with the given id.
func (s *Store) FindByID(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Product{}, false
	}
	return s.products[i], true
}

// All returns a copy of the catalog in insertion order.
func (s *Store) All() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// indexOf must be called with the lock held.
func (s *Store) indexOf(id string) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

// persist must be called with the write lock held.
func (s *Store) persist() {
	if err := storage.SaveProducts(s.kv, s.products); err != nil {
		logx.Error().Err(err).Msg("failed to persist catalog")
	}
}
