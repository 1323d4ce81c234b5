package catalog

import (
	"errors"
	"testing"

	"almacen-pos/internal/models"
	"almacen-pos/internal/storage"
)

func newStore(t *testing.T, products []models.Product) (*Store, *storage.Memory) {
	t.Helper()
	kv := storage.NewMemory()
	if products != nil {
		if err := storage.SaveProducts(kv, products); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return New(kv), kv
}

func TestAddValidation(t *testing.T) {
	cases := []struct {
		name  string
		input ProductInput
		field string
	}{
		{"empty name", ProductInput{Name: "  ", SellingPrice: 10}, "name"},
		{"negative cost", ProductInput{Name: "Azúcar", CostPrice: -1}, "cost_price"},
		{"negative selling", ProductInput{Name: "Azúcar", SellingPrice: -1}, "selling_price"},
		{"negative stock", ProductInput{Name: "Azúcar", Stock: -1}, "stock"},
		{"negative alert", ProductInput{Name: "Azúcar", MinStockAlert: -1}, "min_stock_alert"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newStore(t, []models.Product{})
			_, err := s.Add(tc.input)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, verr.Field)
			}
			if len(s.All()) != 0 {
				t.Fatalf("catalog mutated on invalid input")
			}
		})
	}
}

func TestAddAssignsUniqueIDs(t *testing.T) {
	s, _ := newStore(t, []models.Product{})
	a, err := s.Add(ProductInput{Name: "Azúcar 1kg", CostPrice: 40, SellingPrice: 55, Stock: 10})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	b, err := s.Add(ProductInput{Name: "Harina 1kg", CostPrice: 30, SellingPrice: 42, Stock: 20})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if a.ID == "" || b.ID == "" || a.ID == b.ID {
		t.Fatalf("expected distinct non-empty ids, got %q and %q", a.ID, b.ID)
	}
	if len(s.All()) != 2 {
		t.Fatalf("expected 2 products, got %d", len(s.All()))
	}
}

func TestUpdatePatchesOnlyGivenFields(t *testing.T) {
	s, _ := newStore(t, []models.Product{
		{ID: "1", Name: "Coca Cola 2L", Category: "Bebidas", CostPrice: 90, SellingPrice: 135, Stock: 24, MinStockAlert: 5},
	})

	price := 150.0
	got, err := s.Update("1", ProductPatch{SellingPrice: &price})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.SellingPrice != 150 {
		t.Fatalf("expected selling price 150, got %v", got.SellingPrice)
	}
	if got.Name != "Coca Cola 2L" || got.Stock != 24 || got.CostPrice != 90 {
		t.Fatalf("untouched fields changed: %+v", got)
	}
}

func TestUpdateClampsNegativeStock(t *testing.T) {
	s, _ := newStore(t, []models.Product{{ID: "1", Name: "Pan", SellingPrice: 95, Stock: 8}})

	stock := -3
	got, err := s.Update("1", ProductPatch{Stock: &stock})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Stock != 0 {
		t.Fatalf("expected stock clamped to 0, got %d", got.Stock)
	}
}

func TestUpdateUnknownID(t *testing.T) {
	s, _ := newStore(t, []models.Product{})
	if _, err := s.Update("missing", ProductPatch{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAdjustStock(t *testing.T) {
	s, _ := newStore(t, []models.Product{{ID: "1", Name: "Leche", SellingPrice: 48, Stock: 15}})

	got, err := s.AdjustStock("1", 12)
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if got.Stock != 27 {
		t.Fatalf("expected stock 27, got %d", got.Stock)
	}
	if got.LastSoldAt != nil {
		t.Fatalf("restock must not stamp LastSoldAt")
	}

	got, err = s.AdjustStock("1", -30)
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if got.Stock != 0 {
		t.Fatalf("expected stock clamped to 0, got %d", got.Stock)
	}
	if got.LastSoldAt == nil {
		t.Fatalf("negative adjustment must stamp LastSoldAt")
	}
}

func TestMutationsArePersisted(t *testing.T) {
	s, kv := newStore(t, []models.Product{})
	p, err := s.Add(ProductInput{Name: "Azúcar 1kg", CostPrice: 40, SellingPrice: 55, Stock: 10})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	reloaded := New(kv)
	got, ok := reloaded.FindByID(p.ID)
	if !ok {
		t.Fatalf("product not persisted")
	}
	if got.Name != "Azúcar 1kg" || got.Stock != 10 {
		t.Fatalf("persisted product mismatch: %+v", got)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	s, _ := newStore(t, []models.Product{{ID: "1", Name: "Pan", SellingPrice: 95, Stock: 8}})

	snapshot := s.All()
	snapshot[0].Stock = 999

	got, _ := s.FindByID("1")
	if got.Stock != 8 {
		t.Fatalf("mutating a snapshot leaked into the store")
	}
}
