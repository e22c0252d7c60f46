package domain

// Product represents a product in the catalog. Catalog data is read-only for
// the lifetime of the process; prices are in Algerian dinars.
type Product struct {
	ID             int               `json:"id"`
	Name           string            `json:"name"`
	Price          float64           `json:"price"`
	OriginalPrice  float64           `json:"original_price"`
	Image          string            `json:"image"`
	Rating         float64           `json:"rating"`
	Reviews        int               `json:"reviews"`
	Category       string            `json:"category"`
	Badge          string            `json:"badge,omitempty"`
	Description    string            `json:"description"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
	InStock        bool              `json:"in_stock"`
}

// OnSale reports whether the product is currently discounted.
func (p Product) OnSale() bool {
	return p.OriginalPrice > p.Price
}

// DiscountPercent returns the rounded discount percentage, 0 when not on sale.
func (p Product) DiscountPercent() int {
	if !p.OnSale() || p.OriginalPrice == 0 {
		return 0
	}
	return int((p.OriginalPrice-p.Price)/p.OriginalPrice*100 + 0.5)
}

// CartItem is a product plus the quantity held in the cart. Identity is the
// product ID; a cart holds at most one item per product.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal returns the line total at the current selling price.
func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}
