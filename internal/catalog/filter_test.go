package catalog

import (
	"reflect"
	"testing"

	"souq-tech/internal/domain"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func fixtureProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "سماعات بلوتوث", Description: "سماعات لاسلكية بعزل ضوضاء", Price: 300, Rating: 4.8, Category: "سماعات"},
		{ID: 2, Name: "ساعة ذكية", Description: "شاشة AMOLED ومتابعة النبض", Price: 100, Rating: 4.2, Category: "ساعات ذكية"},
		{ID: 3, Name: "شاحن سريع", Description: "شحن سريع 65 واط", Price: 200, Rating: 4.5, Category: "شواحن"},
	}
}

func fixtureRanges() []PriceRange {
	return []PriceRange{
		{Label: "رخيص", Min: 0, Max: 150},
		{Label: "متوسط", Min: 150, Max: 250},
		{Label: "غالي", Min: 250, Max: 1000},
	}
}

func ids(products []domain.Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestVisible_CategoryFilter(t *testing.T) {
	products := fixtureProducts()

	criteria := domain.DefaultCriteria()
	criteria.SelectedCategory = "سماعات"

	visible := Visible(products, criteria, fixtureRanges())
	if !reflect.DeepEqual(ids(visible), []int{1}) {
		t.Errorf("expected only product 1, got %v", ids(visible))
	}

	// Both "all" sentinels and the empty string disable the category filter.
	for _, all := range []string{domain.CategoryAll, domain.CategoryAllArabic, ""} {
		criteria.SelectedCategory = all
		visible = Visible(products, criteria, fixtureRanges())
		if len(visible) != len(products) {
			t.Errorf("category %q should match everything, got %v", all, ids(visible))
		}
	}
}

func TestVisible_SearchMatchesNameOrDescription(t *testing.T) {
	products := fixtureProducts()

	criteria := domain.DefaultCriteria()
	criteria.SearchQuery = "amoled" // lowercase query against "AMOLED" in the description

	visible := Visible(products, criteria, fixtureRanges())
	if !reflect.DeepEqual(ids(visible), []int{2}) {
		t.Errorf("expected description match on product 2, got %v", ids(visible))
	}

	criteria.SearchQuery = "ساعة"
	visible = Visible(products, criteria, fixtureRanges())
	if !reflect.DeepEqual(ids(visible), []int{2}) {
		t.Errorf("expected name match on product 2, got %v", ids(visible))
	}

	criteria.SearchQuery = "لا يوجد"
	visible = Visible(products, criteria, fixtureRanges())
	if len(visible) != 0 {
		t.Errorf("expected no matches, got %v", ids(visible))
	}
}

func TestVisible_PriceBucketsAreUnioned(t *testing.T) {
	products := fixtureProducts()

	criteria := domain.DefaultCriteria()
	criteria.SelectedPriceRange = []string{"رخيص", "غالي"}

	visible := Visible(products, criteria, fixtureRanges())
	if !reflect.DeepEqual(ids(visible), []int{1, 2}) {
		t.Errorf("expected products 1 and 2, got %v", ids(visible))
	}

	// Bucket bounds are inclusive on both ends.
	criteria.SelectedPriceRange = []string{"متوسط"}
	edge := []domain.Product{
		{ID: 10, Price: 150},
		{ID: 11, Price: 250},
		{ID: 12, Price: 250.01},
	}
	visible = Visible(edge, criteria, fixtureRanges())
	if !reflect.DeepEqual(ids(visible), []int{10, 11}) {
		t.Errorf("expected inclusive bucket edges, got %v", ids(visible))
	}

	// Labels that resolve to no known bucket are ignored.
	criteria.SelectedPriceRange = []string{"غير معروف"}
	visible = Visible(products, criteria, fixtureRanges())
	if len(visible) != len(products) {
		t.Errorf("unknown bucket label should not filter, got %v", ids(visible))
	}
}

func TestVisible_SortOrders(t *testing.T) {
	products := fixtureProducts() // catalog order: prices 300, 100, 200

	tests := []struct {
		sortBy string
		want   []int
	}{
		{domain.SortPriceLow, []int{2, 3, 1}},
		{domain.SortPriceHigh, []int{1, 3, 2}},
		{domain.SortRating, []int{1, 3, 2}},
		{domain.SortNewest, []int{3, 2, 1}},
		{domain.SortFeatured, []int{1, 2, 3}},
		{"nonsense", []int{1, 2, 3}},
	}

	for _, tt := range tests {
		criteria := domain.DefaultCriteria()
		criteria.SortBy = tt.sortBy
		visible := Visible(products, criteria, fixtureRanges())
		if !reflect.DeepEqual(ids(visible), tt.want) {
			t.Errorf("sort %q: expected %v, got %v", tt.sortBy, tt.want, ids(visible))
		}
	}
}

func TestVisible_NameSortIsLocaleAware(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Name: "شاحن"},
		{ID: 2, Name: "ساعة"},
		{ID: 3, Name: "إكسسوار"},
	}

	criteria := domain.DefaultCriteria()
	criteria.SortBy = domain.SortName

	visible := Visible(products, criteria, nil)
	if !reflect.DeepEqual(ids(visible), []int{3, 2, 1}) {
		t.Errorf("expected alphabetical Arabic order, got %v", ids(visible))
	}
}

// The engine is pure: identical inputs yield identical outputs and the
// input slice is left untouched.
func TestProperty_VisibleIsPureAndIdempotent(t *testing.T) {
	properties := gopter.NewProperties(nil)

	categories := []string{domain.CategoryAllArabic, "سماعات", "ساعات ذكية", "شواحن"}
	sorts := []string{
		domain.SortFeatured, domain.SortPriceLow, domain.SortPriceHigh,
		domain.SortRating, domain.SortName, domain.SortNewest,
	}

	properties.Property("repeated evaluation never changes the result or the input", prop.ForAll(
		func(categoryIdx int, sortIdx int, query string, bucketMask int) bool {
			products := fixtureProducts()
			ranges := fixtureRanges()

			var selected []string
			for i, r := range ranges {
				if bucketMask&(1<<i) != 0 {
					selected = append(selected, r.Label)
				}
			}

			criteria := domain.FilterCriteria{
				SearchQuery:        query,
				SelectedCategory:   categories[categoryIdx%len(categories)],
				SelectedPriceRange: selected,
				SortBy:             sorts[sortIdx%len(sorts)],
			}

			before := fixtureProducts()
			first := Visible(products, criteria, ranges)
			second := Visible(products, criteria, ranges)

			if !reflect.DeepEqual(products, before) {
				return false // input slice was mutated
			}
			return reflect.DeepEqual(ids(first), ids(second))
		},
		gen.IntRange(0, 3),
		gen.IntRange(0, 5),
		gen.OneConstOf("", "ساعة", "ذكية", "xyz"),
		gen.IntRange(0, 7),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Every product the engine returns actually satisfies the criteria.
func TestProperty_VisibleOnlyReturnsMatches(t *testing.T) {
	properties := gopter.NewProperties(nil)

	categories := []string{domain.CategoryAllArabic, "سماعات", "ساعات ذكية", "شواحن", "إكسسوارات"}

	properties.Property("returned products match the selected category", prop.ForAll(
		func(categoryIdx int) bool {
			category := categories[categoryIdx%len(categories)]
			criteria := domain.DefaultCriteria()
			criteria.SelectedCategory = category

			visible := Visible(fixtureProducts(), criteria, fixtureRanges())
			for _, p := range visible {
				if !domain.IsAllCategories(category) && p.Category != category {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 4),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
