package storage

import (
	"testing"

	"almacen-pos/internal/models"
)

func TestMemoryRoundTrip(t *testing.T) {
	kv := NewMemory()

	if _, ok, err := kv.Get("nope"); err != nil || ok {
		t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
	}
	if err := kv.Put("k", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	v, ok, err := kv.Get("k")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(v) != `{"a":1}` {
		t.Fatalf("unexpected value %q", v)
	}

	// Overwrite wins.
	if err := kv.Put("k", []byte(`[]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	v, _, _ = kv.Get("k")
	if string(v) != `[]` {
		t.Fatalf("expected overwrite, got %q", v)
	}
}

func TestLoadProductsFallsBackToSeed(t *testing.T) {
	cases := []struct {
		name string
		prep func(kv *Memory)
	}{
		{"missing key", func(kv *Memory) {}},
		{"malformed blob", func(kv *Memory) { _ = kv.Put(ProductsKey, []byte("{not json")) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kv := NewMemory()
			tc.prep(kv)
			got := LoadProducts(kv)
			seed := SeedProducts()
			if len(got) != len(seed) {
				t.Fatalf("expected seed catalog of %d, got %d", len(seed), len(got))
			}
			if got[0].Name != "Coca Cola 2L" || got[0].Stock != 24 {
				t.Fatalf("unexpected seed head: %+v", got[0])
			}
		})
	}
}

func TestLoadProductsPrefersPersisted(t *testing.T) {
	kv := NewMemory()
	want := []models.Product{{ID: "x", Name: "Azúcar", SellingPrice: 55, Stock: 7}}
	if err := SaveProducts(kv, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got := LoadProducts(kv)
	if len(got) != 1 || got[0].ID != "x" || got[0].Stock != 7 {
		t.Fatalf("expected persisted catalog, got %+v", got)
	}
}

func TestLoadSales(t *testing.T) {
	kv := NewMemory()
	if got := LoadSales(kv); got != nil {
		t.Fatalf("expected empty ledger for missing key, got %+v", got)
	}

	_ = kv.Put(SalesKey, []byte("garbage"))
	if got := LoadSales(kv); got != nil {
		t.Fatalf("expected empty ledger for malformed blob, got %+v", got)
	}

	want := []models.Sale{{ID: "s1", TotalAmount: 405, TotalProfit: 135}}
	if err := SaveSales(kv, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got := LoadSales(kv)
	if len(got) != 1 || got[0].ID != "s1" || got[0].TotalAmount != 405 {
		t.Fatalf("expected persisted ledger, got %+v", got)
	}
}

func TestSeedCategories(t *testing.T) {
	for _, p := range SeedProducts() {
		found := false
		for _, c := range Categories {
			if p.Category == c {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("seed product %q has unknown category %q", p.Name, p.Category)
		}
	}
}
