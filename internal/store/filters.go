package store

import "souq-tech/internal/domain"

// Filter criteria setters are unconditional last-write-wins assignments.
// The store does not validate values against the known categories, buckets,
// or sort orders; that is the presentation layer's concern. Criteria are
// memory-only and reset to defaults on restart.

// SetSearchQuery sets the free-text search filter.
func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	s.criteria.SearchQuery = query
	s.mu.Unlock()

	s.notifySubscribers()
}

// SetSelectedCategory sets the category filter. Passing a no-filter sentinel
// clears the category filter; other criteria fields are untouched.
func (s *Store) SetSelectedCategory(category string) {
	s.mu.Lock()
	s.criteria.SelectedCategory = category
	s.mu.Unlock()

	s.notifySubscribers()
}

// SetSelectedPriceRange replaces the set of selected price bucket labels.
func (s *Store) SetSelectedPriceRange(labels []string) {
	s.mu.Lock()
	s.criteria.SelectedPriceRange = append([]string{}, labels...)
	s.mu.Unlock()

	s.notifySubscribers()
}

// SetSortBy sets the sort order.
func (s *Store) SetSortBy(sortBy string) {
	s.mu.Lock()
	s.criteria.SortBy = sortBy
	s.mu.Unlock()

	s.notifySubscribers()
}

// ClearFilters resets all criteria fields to their defaults.
func (s *Store) ClearFilters() {
	s.mu.Lock()
	s.criteria = domain.DefaultCriteria()
	s.mu.Unlock()

	s.notifySubscribers()
}

// Criteria returns a copy of the current filter criteria.
func (s *Store) Criteria() domain.FilterCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()

	criteria := s.criteria
	criteria.SelectedPriceRange = append([]string{}, s.criteria.SelectedPriceRange...)
	return criteria
}
