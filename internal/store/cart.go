package store

import "souq-tech/internal/domain"

// AddToCart inserts the product with the given quantity, or accumulates the
// quantity onto the existing cart item for the same product ID. Quantities
// below 1 are rejected; stock state is advisory and never checked here.
func (s *Store) AddToCart(product domain.Product, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	found := false
	for i := range s.cart {
		if s.cart[i].ID == product.ID {
			s.cart[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		s.cart = append(s.cart, domain.CartItem{Product: product, Quantity: quantity})
	}
	s.persistLocked()
	s.mu.Unlock()

	s.notifySubscribers()
	return nil
}

// RemoveFromCart deletes the item with the given product ID. Removing an
// absent item is a no-op, not an error.
func (s *Store) RemoveFromCart(productID int) {
	s.mu.Lock()
	kept := s.cart[:0]
	for _, item := range s.cart {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	s.cart = kept
	s.persistLocked()
	s.mu.Unlock()

	s.notifySubscribers()
}

// UpdateQuantity sets (not adds) the quantity of an existing cart item.
// A quantity of zero or less removes the item. Unknown IDs are a no-op.
func (s *Store) UpdateQuantity(productID, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(productID)
		return
	}

	s.mu.Lock()
	for i := range s.cart {
		if s.cart[i].ID == productID {
			s.cart[i].Quantity = quantity
			break
		}
	}
	s.persistLocked()
	s.mu.Unlock()

	s.notifySubscribers()
}

// ClearCart empties the cart unconditionally.
func (s *Store) ClearCart() {
	s.mu.Lock()
	s.cart = []domain.CartItem{}
	s.persistLocked()
	s.mu.Unlock()

	s.notifySubscribers()
}

// CartItems returns a copy of the cart contents in insertion order.
func (s *Store) CartItems() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CartItem{}, s.cart...)
}

// CartTotal returns the sum of price×quantity over the cart, at current
// selling prices.
func (s *Store) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, item := range s.cart {
		total += item.Subtotal()
	}
	return total
}

// CartItemsCount returns the sum of quantities across all cart items.
func (s *Store) CartItemsCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, item := range s.cart {
		count += item.Quantity
	}
	return count
}
