// Package storage is the persistence port of the application: a key-value
// store mapping string keys to JSON blobs, with a SQLite-backed and an
// in-memory implementation.
package storage

import (
	"encoding/json"

	"almacen-pos/internal/models"
	logx "almacen-pos/pkg/logger"
)

// Keys under which the two collections are persisted.
const (
	ProductsKey = "products"
	SalesKey    = "sales"
)

// KV abstracts the local store. Implementations must be safe for use from
// multiple goroutines.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
}

// LoadProducts returns the persisted catalog. A missing key or a blob that
// does not decode falls back to the built-in seed catalog.
func LoadProducts(kv KV) []models.Product {
	raw, ok, err := kv.Get(ProductsKey)
	if err != nil {
		logx.Warn().Err(err).Msg("could not read persisted catalog, using seed")
		return SeedProducts()
	}
	if !ok {
		return SeedProducts()
	}
	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		logx.Warn().Err(err).Msg("persisted catalog is malformed, using seed")
		return SeedProducts()
	}
	return products
}

// LoadSales returns the persisted ledger, or an empty ledger when the key is
// missing or malformed.
func LoadSales(kv KV) []models.Sale {
	raw, ok, err := kv.Get(SalesKey)
	if err != nil {
		logx.Warn().Err(err).Msg("could not read persisted ledger, starting empty")
		return nil
	}
	if !ok {
		return nil
	}
	var sales []models.Sale
	if err := json.Unmarshal(raw, &sales); err != nil {
		logx.Warn().Err(err).Msg("persisted ledger is malformed, starting empty")
		return nil
	}
	return sales
}

// SaveProducts serializes the catalog under ProductsKey.
func SaveProducts(kv KV, products []models.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return kv.Put(ProductsKey, raw)
}

// SaveSales serializes the ledger under SalesKey.
func SaveSales(kv KV, sales []models.Sale) error {
	raw, err := json.Marshal(sales)
	if err != nil {
		return err
	}
	return kv.Put(SalesKey, raw)
}
