package store

import (
	"context"
	"errors"
	"testing"

	"souq-tech/internal/domain"

	"go.uber.org/zap"
)

// mockSnapshotter records saves and serves a canned snapshot.
type mockSnapshotter struct {
	snapshot  *Snapshot
	loadErr   error
	saveErr   error
	saveCalls int
	lastSaved Snapshot
}

func (m *mockSnapshotter) Load(ctx context.Context) (*Snapshot, error) {
	return m.snapshot, m.loadErr
}

func (m *mockSnapshotter) Save(ctx context.Context, snapshot Snapshot) error {
	m.saveCalls++
	m.lastSaved = snapshot
	return m.saveErr
}

func TestNew_HydratesCartAndWishlist(t *testing.T) {
	snapshots := &mockSnapshotter{
		snapshot: &Snapshot{
			Cart:     []domain.CartItem{{Product: testProduct(1, 12999), Quantity: 2}},
			Wishlist: []domain.Product{testProduct(2, 25999)},
		},
	}

	s := New(zap.NewNop(), snapshots)

	if got := s.CartItemsCount(); got != 2 {
		t.Errorf("expected hydrated cart count 2, got %d", got)
	}
	if !s.IsInWishlist(2) {
		t.Error("expected hydrated wishlist entry")
	}

	// Filters and notifications never hydrate; they start at defaults.
	criteria := s.Criteria()
	if criteria.SelectedCategory != domain.CategoryAllArabic || criteria.SortBy != domain.SortFeatured {
		t.Errorf("expected default criteria, got %+v", criteria)
	}
	if len(s.Notifications()) != 0 {
		t.Error("expected empty notification log after hydration")
	}
}

func TestNew_LoadFailureStartsEmpty(t *testing.T) {
	snapshots := &mockSnapshotter{loadErr: errors.New("connection refused")}

	s := New(zap.NewNop(), snapshots)

	if len(s.CartItems()) != 0 || len(s.WishlistItems()) != 0 {
		t.Error("a failed load must produce an empty store, not a crash")
	}

	// The store still works and still tries to persist.
	if err := s.AddToCart(testProduct(1, 100), 1); err != nil {
		t.Fatal(err)
	}
	if snapshots.saveCalls == 0 {
		t.Error("expected a save attempt after the mutation")
	}
}

func TestMutations_PersistOnlyCartAndWishlist(t *testing.T) {
	snapshots := &mockSnapshotter{}
	s := New(zap.NewNop(), snapshots)

	before := snapshots.saveCalls
	s.SetSearchQuery("سماعات")
	s.SetSortBy(domain.SortPriceLow)
	s.AddAdminNotification(domain.AdminNotification{Type: domain.NotificationOrder})
	if snapshots.saveCalls != before {
		t.Error("filter and notification mutations must not persist")
	}

	if err := s.AddToCart(testProduct(1, 100), 1); err != nil {
		t.Fatal(err)
	}
	s.AddToWishlist(testProduct(2, 200))

	if snapshots.saveCalls != before+2 {
		t.Errorf("expected 2 saves, got %d", snapshots.saveCalls-before)
	}
	if len(snapshots.lastSaved.Cart) != 1 || len(snapshots.lastSaved.Wishlist) != 1 {
		t.Errorf("unexpected snapshot contents: %+v", snapshots.lastSaved)
	}
}

func TestMutations_SaveFailureIsSwallowed(t *testing.T) {
	snapshots := &mockSnapshotter{saveErr: errors.New("disk full")}
	s := New(zap.NewNop(), snapshots)

	if err := s.AddToCart(testProduct(1, 100), 1); err != nil {
		t.Fatalf("persistence failures must not surface to callers: %v", err)
	}
	if s.CartItemsCount() != 1 {
		t.Error("the in-memory state must still be updated")
	}
}

func TestWishlist_RepeatAddDoesNotRePersist(t *testing.T) {
	snapshots := &mockSnapshotter{}
	s := New(zap.NewNop(), snapshots)

	s.AddToWishlist(testProduct(1, 100))
	saves := snapshots.saveCalls

	s.AddToWishlist(testProduct(1, 100))
	if snapshots.saveCalls != saves {
		t.Error("a no-op add must not write a snapshot")
	}
}

func TestFlush_PersistsCurrentState(t *testing.T) {
	snapshots := &mockSnapshotter{}
	s := New(zap.NewNop(), snapshots)

	if err := s.AddToCart(testProduct(1, 100), 3); err != nil {
		t.Fatal(err)
	}

	before := snapshots.saveCalls
	s.Flush()
	if snapshots.saveCalls != before+1 {
		t.Error("expected Flush to save a snapshot")
	}
	if len(snapshots.lastSaved.Cart) != 1 || snapshots.lastSaved.Cart[0].Quantity != 3 {
		t.Errorf("unexpected flushed snapshot: %+v", snapshots.lastSaved)
	}
}

func TestSubscribe_NotifiesOnEveryMutation(t *testing.T) {
	s := newTestStore(t)

	calls := 0
	unsubscribe := s.Subscribe(func() { calls++ })

	if err := s.AddToCart(testProduct(1, 100), 1); err != nil {
		t.Fatal(err)
	}
	s.SetSearchQuery("شاحن")
	s.AddToWishlist(testProduct(2, 200))
	s.AddAdminNotification(domain.AdminNotification{Type: domain.NotificationOrder})

	if calls != 4 {
		t.Errorf("expected 4 notifications, got %d", calls)
	}

	unsubscribe()
	s.ClearCart()
	if calls != 4 {
		t.Error("unsubscribed callbacks must not fire")
	}
}

func TestSubscribe_CallbacksMayReadTheStore(t *testing.T) {
	s := newTestStore(t)

	var observedCount int
	s.Subscribe(func() {
		// Runs after the lock is released; reading back must not deadlock.
		observedCount = s.CartItemsCount()
	})

	if err := s.AddToCart(testProduct(1, 100), 2); err != nil {
		t.Fatal(err)
	}
	if observedCount != 2 {
		t.Errorf("subscriber saw count %d, want 2", observedCount)
	}
}
