package catalog

import (
	"errors"
	"testing"

	"souq-tech/internal/domain"
)

func TestSeedProvider_FindProduct(t *testing.T) {
	provider := NewSeedProvider()

	product, err := provider.FindProduct(1)
	if err != nil {
		t.Fatalf("expected product 1 to exist: %v", err)
	}
	if product.Name == "" || product.Category == "" {
		t.Errorf("seed product 1 is missing fields: %+v", product)
	}

	_, err = provider.FindProduct(9999)
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestSeedProvider_CategoriesStartWithAllSentinel(t *testing.T) {
	provider := NewSeedProvider()

	categories := provider.Categories()
	if len(categories) == 0 || categories[0] != domain.CategoryAllArabic {
		t.Fatalf("expected sentinel category first, got %v", categories)
	}

	// Every product's category must be a listed category.
	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		known[c] = true
	}
	for _, p := range provider.Products() {
		if !known[p.Category] {
			t.Errorf("product %d has unlisted category %q", p.ID, p.Category)
		}
	}
}

func TestSeedProvider_PriceRangesCoverCatalog(t *testing.T) {
	provider := NewSeedProvider()

	ranges := provider.PriceRanges()
	if len(ranges) == 0 {
		t.Fatal("expected seed price ranges")
	}

	for _, p := range provider.Products() {
		covered := false
		for _, r := range ranges {
			if p.Price >= r.Min && p.Price <= r.Max {
				covered = true
				break
			}
		}
		if !covered {
			t.Errorf("product %d price %.0f falls outside every bucket", p.ID, p.Price)
		}
	}
}

func TestSeedProvider_Related(t *testing.T) {
	provider := NewSeedProvider()

	product, err := provider.FindProduct(1)
	if err != nil {
		t.Fatal(err)
	}

	related := provider.Related(1, 3)
	if len(related) == 0 {
		t.Fatal("expected related products for product 1")
	}
	for _, r := range related {
		if r.ID == 1 {
			t.Error("related products must not include the product itself")
		}
		if r.Category != product.Category {
			t.Errorf("related product %d has category %q, want %q", r.ID, r.Category, product.Category)
		}
	}

	if got := provider.Related(9999, 3); got != nil {
		t.Errorf("expected nil for unknown product, got %v", got)
	}
}

func TestSeedProvider_Regions(t *testing.T) {
	provider := NewSeedProvider()

	wilayas := provider.Wilayas()
	if len(wilayas) == 0 {
		t.Fatal("expected seed wilayas")
	}

	for _, w := range wilayas {
		communes, err := provider.Communes(w)
		if err != nil {
			t.Errorf("wilaya %q: %v", w, err)
			continue
		}
		if len(communes) == 0 {
			t.Errorf("wilaya %q has no communes", w)
		}
	}

	_, err := provider.Communes("أتلانتس")
	if !errors.Is(err, ErrWilayaNotFound) {
		t.Errorf("expected ErrWilayaNotFound, got %v", err)
	}
}

func TestStaticProvider_ReadsReturnCopies(t *testing.T) {
	provider := NewSeedProvider()

	products := provider.Products()
	products[0].Name = "مزور"

	fresh, err := provider.FindProduct(products[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if fresh.Name == "مزور" {
		t.Error("mutating a returned slice must not affect the catalog")
	}

	categories := provider.Categories()
	categories[0] = "مزور"
	if provider.Categories()[0] == "مزور" {
		t.Error("mutating returned categories must not affect the catalog")
	}
}
