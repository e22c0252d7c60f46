package catalog

import (
	"errors"
	"sort"

	"souq-tech/internal/domain"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrWilayaNotFound  = errors.New("wilaya not found")
)

// PriceRange is a named inclusive [Min, Max] price bucket used for filtering.
type PriceRange struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// Provider supplies the read-only catalogs the storefront queries: products,
// category labels, price buckets, and delivery regions. Implementations are
// loaded once and treated as constant for the process lifetime.
type Provider interface {
	Products() []domain.Product
	FindProduct(id int) (*domain.Product, error)
	Related(id int, limit int) []domain.Product
	Categories() []string
	PriceRanges() []PriceRange
	Wilayas() []string
	Communes(wilaya string) ([]string, error)
}

type staticProvider struct {
	products    []domain.Product
	categories  []string
	priceRanges []PriceRange
	regions     map[string][]string
	regionOrder []string
}

// NewStaticProvider builds a Provider over fixed seed data. The slices are
// copied on every read so callers can never mutate the catalog.
func NewStaticProvider(products []domain.Product, categories []string, ranges []PriceRange, regions map[string][]string) Provider {
	order := make([]string, 0, len(regions))
	for w := range regions {
		order = append(order, w)
	}
	sort.Strings(order)

	return &staticProvider{
		products:    products,
		categories:  categories,
		priceRanges: ranges,
		regions:     regions,
		regionOrder: order,
	}
}

// NewSeedProvider returns the built-in storefront catalog.
func NewSeedProvider() Provider {
	return NewStaticProvider(seedProducts, seedCategories, seedPriceRanges, seedRegions)
}

func (p *staticProvider) Products() []domain.Product {
	out := make([]domain.Product, len(p.products))
	copy(out, p.products)
	return out
}

func (p *staticProvider) FindProduct(id int) (*domain.Product, error) {
	for _, product := range p.products {
		if product.ID == id {
			found := product
			return &found, nil
		}
	}
	return nil, ErrProductNotFound
}

// Related returns up to limit other products sharing the given product's
// category, in catalog order.
func (p *staticProvider) Related(id int, limit int) []domain.Product {
	product, err := p.FindProduct(id)
	if err != nil {
		return nil
	}

	related := []domain.Product{}
	for _, candidate := range p.products {
		if len(related) >= limit {
			break
		}
		if candidate.Category == product.Category && candidate.ID != id {
			related = append(related, candidate)
		}
	}
	return related
}

func (p *staticProvider) Categories() []string {
	out := make([]string, len(p.categories))
	copy(out, p.categories)
	return out
}

func (p *staticProvider) PriceRanges() []PriceRange {
	out := make([]PriceRange, len(p.priceRanges))
	copy(out, p.priceRanges)
	return out
}

func (p *staticProvider) Wilayas() []string {
	out := make([]string, len(p.regionOrder))
	copy(out, p.regionOrder)
	return out
}

func (p *staticProvider) Communes(wilaya string) ([]string, error) {
	communes, ok := p.regions[wilaya]
	if !ok {
		return nil, ErrWilayaNotFound
	}
	out := make([]string, len(communes))
	copy(out, communes)
	return out, nil
}
