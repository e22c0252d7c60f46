package store

import "souq-tech/internal/domain"

// AddToWishlist appends the product unless it is already present. The
// wishlist is a set keyed by product ID, so repeat adds are no-ops.
func (s *Store) AddToWishlist(product domain.Product) {
	s.mu.Lock()
	for _, entry := range s.wishlist {
		if entry.ID == product.ID {
			s.mu.Unlock()
			return
		}
	}
	s.wishlist = append(s.wishlist, product)
	s.persistLocked()
	s.mu.Unlock()

	s.notifySubscribers()
}

// RemoveFromWishlist removes every entry with the given product ID. Removing
// an absent product is a no-op.
func (s *Store) RemoveFromWishlist(productID int) {
	s.mu.Lock()
	kept := s.wishlist[:0]
	for _, entry := range s.wishlist {
		if entry.ID != productID {
			kept = append(kept, entry)
		}
	}
	s.wishlist = kept
	s.persistLocked()
	s.mu.Unlock()

	s.notifySubscribers()
}

// IsInWishlist reports whether the product is currently wishlisted.
func (s *Store) IsInWishlist(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range s.wishlist {
		if entry.ID == productID {
			return true
		}
	}
	return false
}

// ClearWishlist empties the wishlist.
func (s *Store) ClearWishlist() {
	s.mu.Lock()
	s.wishlist = []domain.Product{}
	s.persistLocked()
	s.mu.Unlock()

	s.notifySubscribers()
}

// WishlistItems returns a copy of the wishlist in insertion order.
func (s *Store) WishlistItems() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Product{}, s.wishlist...)
}
