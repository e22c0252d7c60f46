package domain

import "testing"

func TestProduct_OnSale(t *testing.T) {
	tests := []struct {
		name    string
		price   float64
		orig    float64
		onSale  bool
		percent int
	}{
		{"discounted", 12999, 16999, true, 24},
		{"full price", 25999, 25999, false, 0},
		{"no original price", 4599, 0, false, 0},
		{"half off", 5000, 10000, true, 50},
	}

	for _, tt := range tests {
		p := Product{Price: tt.price, OriginalPrice: tt.orig}
		if p.OnSale() != tt.onSale {
			t.Errorf("%s: OnSale() = %v, want %v", tt.name, p.OnSale(), tt.onSale)
		}
		if got := p.DiscountPercent(); got != tt.percent {
			t.Errorf("%s: DiscountPercent() = %d, want %d", tt.name, got, tt.percent)
		}
	}
}

func TestCartItem_Subtotal(t *testing.T) {
	item := CartItem{Product: Product{Price: 3899}, Quantity: 3}
	if got := item.Subtotal(); got != 3*3899.0 {
		t.Errorf("Subtotal() = %.2f, want %.2f", got, 3*3899.0)
	}
}

func TestIsAllCategories(t *testing.T) {
	for _, label := range []string{"", CategoryAll, CategoryAllArabic} {
		if !IsAllCategories(label) {
			t.Errorf("expected %q to be a no-filter sentinel", label)
		}
	}
	if IsAllCategories("سماعات") {
		t.Error("a real category is not a sentinel")
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, status := range []string{OrderPending, OrderConfirmed, OrderDelivered, OrderCancelled} {
		if !ValidOrderStatus(status) {
			t.Errorf("expected %q valid", status)
		}
	}
	for _, status := range []string{"", "shipped", "Pending"} {
		if ValidOrderStatus(status) {
			t.Errorf("expected %q invalid", status)
		}
	}
}
