// Package store holds the storefront's client-facing state: the shopping
// cart, the wishlist, the listing filter criteria, and the admin notification
// log. Cart and wishlist survive restarts through a snapshot adapter; filters
// and notifications are memory-only and reset with the process.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"souq-tech/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be greater than 0")
)

const saveTimeout = 5 * time.Second

// Snapshot is the persisted subset of store state. Everything else is
// deliberately excluded and rebuilt as defaults on startup.
type Snapshot struct {
	Cart     []domain.CartItem `json:"cart"`
	Wishlist []domain.Product  `json:"wishlist"`
}

// Snapshotter persists and restores snapshots. Save fully replaces the stored
// snapshot (last-write-wins); Load returns nil with no error when nothing has
// been persisted yet.
type Snapshotter interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snapshot Snapshot) error
}

// Option customizes a Store at construction time.
type Option func(*Store)

// WithIDGenerator overrides how notification IDs are generated.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// WithClock overrides the timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Store is the storefront state store. A single mutex makes every mutation
// atomic with respect to every other; mutations that touch the persisted
// subset re-save the whole snapshot before returning, and every mutation
// notifies subscribers afterwards.
type Store struct {
	logger    *zap.Logger
	snapshots Snapshotter
	newID     func() string
	now       func() time.Time

	mu            sync.Mutex
	cart          []domain.CartItem
	wishlist      []domain.Product
	criteria      domain.FilterCriteria
	notifications []domain.AdminNotification

	subMu       sync.Mutex
	subscribers map[int]func()
	nextSubID   int
}

// New creates a store and hydrates cart and wishlist from the snapshotter.
// A nil snapshotter means memory-only operation. Hydration failure is logged
// and the store starts empty; it never prevents startup.
func New(logger *zap.Logger, snapshots Snapshotter, opts ...Option) *Store {
	s := &Store{
		logger:        logger,
		snapshots:     snapshots,
		newID:         uuid.NewString,
		now:           time.Now,
		cart:          []domain.CartItem{},
		wishlist:      []domain.Product{},
		criteria:      domain.DefaultCriteria(),
		notifications: []domain.AdminNotification{},
		subscribers:   map[int]func(){},
	}

	for _, opt := range opts {
		opt(s)
	}

	s.hydrate()
	return s
}

func (s *Store) hydrate() {
	if s.snapshots == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	snapshot, err := s.snapshots.Load(ctx)
	if err != nil {
		s.logger.Warn("Failed to load store snapshot, starting empty", zap.Error(err))
		return
	}
	if snapshot == nil {
		return
	}

	if snapshot.Cart != nil {
		s.cart = snapshot.Cart
	}
	if snapshot.Wishlist != nil {
		s.wishlist = snapshot.Wishlist
	}

	s.logger.Info("Store snapshot restored",
		zap.Int("cart_items", len(s.cart)),
		zap.Int("wishlist_items", len(s.wishlist)),
	)
}

// persistLocked writes the current snapshot. Persistence failures must never
// surface to callers: the store keeps serving from memory for the session.
// Callers must hold s.mu.
func (s *Store) persistLocked() {
	if s.snapshots == nil {
		return
	}

	snapshot := Snapshot{
		Cart:     append([]domain.CartItem{}, s.cart...),
		Wishlist: append([]domain.Product{}, s.wishlist...),
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	if err := s.snapshots.Save(ctx, snapshot); err != nil {
		s.logger.Warn("Failed to persist store snapshot, continuing in memory", zap.Error(err))
	}
}

// Flush persists the current snapshot immediately. Used on shutdown.
func (s *Store) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persistLocked()
}

// Subscribe registers a callback invoked after every mutation. The returned
// function removes the subscription. Callbacks run on the mutating goroutine
// after the store lock is released, so they may read the store freely.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subscribers, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notifySubscribers() {
	s.subMu.Lock()
	callbacks := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		callbacks = append(callbacks, fn)
	}
	s.subMu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}
