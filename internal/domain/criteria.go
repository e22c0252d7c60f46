package domain

// Sort orders accepted by the filter engine. Any other value falls back to
// SortFeatured, which preserves catalog order.
const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortName      = "name"
	SortNewest    = "newest"
)

// Category sentinels meaning "no category filter". The storefront UI is
// Arabic-first, so both spellings are honored.
const (
	CategoryAll       = "All"
	CategoryAllArabic = "الكل"
)

// IsAllCategories reports whether the label is a no-filter sentinel.
func IsAllCategories(category string) bool {
	return category == "" || category == CategoryAll || category == CategoryAllArabic
}

// FilterCriteria is the process-wide listing state: free-text search, a
// single category, any number of price buckets, and a sort order. Zero values
// mean "no filter" for every field except SortBy, whose zero value behaves
// like SortFeatured.
type FilterCriteria struct {
	SearchQuery        string   `json:"search_query"`
	SelectedCategory   string   `json:"selected_category"`
	SelectedPriceRange []string `json:"selected_price_range"`
	SortBy             string   `json:"sort_by"`
}

// DefaultCriteria returns the criteria the store starts with and resets to.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		SelectedCategory:   CategoryAllArabic,
		SelectedPriceRange: []string{},
		SortBy:             SortFeatured,
	}
}
