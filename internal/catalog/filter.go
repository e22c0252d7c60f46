package catalog

import (
	"sort"
	"strings"

	"souq-tech/internal/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Visible returns the product list a listing page should render for the
// given criteria: every filter ANDed together, then a stable sort. The input
// slice is never mutated; the result is always a fresh slice.
func Visible(products []domain.Product, criteria domain.FilterCriteria, ranges []PriceRange) []domain.Product {
	selected := selectedBuckets(criteria.SelectedPriceRange, ranges)
	query := strings.ToLower(strings.TrimSpace(criteria.SearchQuery))

	visible := make([]domain.Product, 0, len(products))
	for _, product := range products {
		if !matchesCategory(product, criteria.SelectedCategory) {
			continue
		}
		if !matchesSearch(product, query) {
			continue
		}
		if !matchesPrice(product, selected) {
			continue
		}
		visible = append(visible, product)
	}

	sortProducts(visible, criteria.SortBy)
	return visible
}

func matchesCategory(product domain.Product, category string) bool {
	if domain.IsAllCategories(category) {
		return true
	}
	return product.Category == category
}

func matchesSearch(product domain.Product, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(product.Name), query) ||
		strings.Contains(strings.ToLower(product.Description), query)
}

// matchesPrice passes when no buckets are selected, otherwise when the price
// falls inside at least one selected bucket (inclusive on both ends).
func matchesPrice(product domain.Product, selected []PriceRange) bool {
	if len(selected) == 0 {
		return true
	}
	for _, bucket := range selected {
		if product.Price >= bucket.Min && product.Price <= bucket.Max {
			return true
		}
	}
	return false
}

// selectedBuckets resolves bucket labels against the known ranges. Unknown
// labels are dropped rather than treated as match-nothing buckets.
func selectedBuckets(labels []string, ranges []PriceRange) []PriceRange {
	if len(labels) == 0 {
		return nil
	}
	byLabel := make(map[string]PriceRange, len(ranges))
	for _, r := range ranges {
		byLabel[r.Label] = r
	}
	selected := make([]PriceRange, 0, len(labels))
	for _, label := range labels {
		if bucket, ok := byLabel[label]; ok {
			selected = append(selected, bucket)
		}
	}
	return selected
}

func sortProducts(products []domain.Product, sortBy string) {
	switch sortBy {
	case domain.SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case domain.SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case domain.SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case domain.SortName:
		// Locale-aware ordering; the catalog carries Arabic product names.
		collator := collate.New(language.Arabic)
		sort.SliceStable(products, func(i, j int) bool {
			return collator.CompareString(products[i].Name, products[j].Name) < 0
		})
	case domain.SortNewest:
		// Higher IDs are assigned later, so newest first means ID descending.
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ID > products[j].ID
		})
	default:
		// SortFeatured and unrecognized values keep catalog order.
	}
}
