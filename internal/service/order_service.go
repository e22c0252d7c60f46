package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"souq-tech/internal/domain"
	"souq-tech/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrServiceClosed      = errors.New("order service is closed")
)

// OrderRequest carries the order form a customer submits. Field validation
// (all fields required, quantity at least 1) happens in the transport layer;
// the service trusts its input.
type OrderRequest struct {
	FullName      string
	Phone         string
	Wilaya        string
	Commune       string
	StreetAddress string
	Product       domain.Product
	Quantity      int
}

// OrderStats is the summary block on the admin dashboard.
type OrderStats struct {
	TotalOrders   int     `json:"total_orders"`
	PendingOrders int     `json:"pending_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
	TodayOrders   int     `json:"today_orders"`
}

// OrderService manages the in-memory order book and the simulated order
// submission flow. There is no fulfillment backend: "processing" an order is
// a fixed delay, after which the order lands in the book and an admin
// notification is logged.
type OrderService interface {
	// SubmitOrder returns a pending ticket immediately and schedules the
	// simulated completion. Scheduled work is cancelled by Close.
	SubmitOrder(ctx context.Context, req OrderRequest) (*domain.OrderTicket, error)
	ListOrders(search, status string) []domain.Order
	FindOrder(id string) (*domain.Order, error)
	UpdateStatus(id, status string) (*domain.Order, error)
	Stats() OrderStats
	Close()
}

// NumberGenerator produces human-facing order numbers.
type NumberGenerator func() string

// DefaultNumberGenerator derives a short uppercase order number from a UUID,
// which keeps collisions out of reach without a coordination service.
func DefaultNumberGenerator() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:9])
}

type orderService struct {
	logger      *zap.Logger
	st          *store.Store
	submitDelay time.Duration
	newNumber   NumberGenerator
	now         func() time.Time

	mu     sync.Mutex
	orders []domain.Order
	closed bool

	stop chan struct{}
	wg   sync.WaitGroup
}

// NewOrderService creates an order service writing notifications to st.
// A nil numbers generator falls back to DefaultNumberGenerator.
func NewOrderService(logger *zap.Logger, st *store.Store, submitDelay time.Duration, numbers NumberGenerator) OrderService {
	if numbers == nil {
		numbers = DefaultNumberGenerator
	}
	return &orderService{
		logger:      logger,
		st:          st,
		submitDelay: submitDelay,
		newNumber:   numbers,
		now:         time.Now,
		orders:      []domain.Order{},
		stop:        make(chan struct{}),
	}
}

func (s *orderService) SubmitOrder(ctx context.Context, req OrderRequest) (*domain.OrderTicket, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrServiceClosed
	}
	s.wg.Add(1)
	s.mu.Unlock()

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	order := domain.Order{
		ID:              uuid.NewString(),
		OrderNumber:     s.newNumber(),
		CustomerName:    req.FullName,
		CustomerPhone:   req.Phone,
		CustomerAddress: fmt.Sprintf("%s, %s, %s", req.Wilaya, req.Commune, req.StreetAddress),
		Product: domain.OrderProduct{
			ID:    req.Product.ID,
			Name:  req.Product.Name,
			Price: req.Product.Price,
			Image: req.Product.Image,
		},
		Quantity:  quantity,
		Total:     req.Product.Price * float64(quantity),
		Status:    domain.OrderPending,
		CreatedAt: s.now(),
	}

	ticket := &domain.OrderTicket{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		SubmittedAt: order.CreatedAt,
	}

	s.logger.Info("Order submitted",
		zap.String("order_number", order.OrderNumber),
		zap.String("customer", order.CustomerName),
		zap.Float64("total", order.Total),
	)

	go s.completeAfterDelay(order)

	return ticket, nil
}

// completeAfterDelay simulates order processing: after the configured delay
// the order is recorded and the admin is notified, exactly once. Close
// cancels outstanding completions so nothing mutates the store afterwards.
func (s *orderService) completeAfterDelay(order domain.Order) {
	defer s.wg.Done()

	timer := time.NewTimer(s.submitDelay)
	defer timer.Stop()

	select {
	case <-s.stop:
		s.logger.Debug("Order completion cancelled", zap.String("order_number", order.OrderNumber))
		return
	case <-timer.C:
	}

	s.record(order)
}

// record appends the order to the book and logs the admin notification.
func (s *orderService) record(order domain.Order) {
	s.mu.Lock()
	s.orders = append([]domain.Order{order}, s.orders...)
	s.mu.Unlock()

	s.st.AddAdminNotification(domain.AdminNotification{
		Type:    domain.NotificationOrder,
		Title:   "طلب جديد!",
		Message: fmt.Sprintf("طلب جديد من %s للمنتج: %s", order.CustomerName, order.Product.Name),
		Data:    order,
	})

	s.logger.Info("Order recorded",
		zap.String("order_number", order.OrderNumber),
		zap.String("status", order.Status),
	)
}

// ListOrders returns orders newest first, optionally narrowed by a
// case-insensitive search over customer name, order number and phone, and by
// lifecycle status. An empty or "all" status matches everything.
func (s *orderService) ListOrders(search, status string) []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := strings.ToLower(strings.TrimSpace(search))
	out := []domain.Order{}
	for _, order := range s.orders {
		if status != "" && status != "all" && order.Status != status {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(order.CustomerName), query) &&
			!strings.Contains(strings.ToLower(order.OrderNumber), query) &&
			!strings.Contains(order.CustomerPhone, query) {
			continue
		}
		out = append(out, order)
	}
	return out
}

func (s *orderService) FindOrder(id string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, order := range s.orders {
		if order.ID == id {
			found := order
			return &found, nil
		}
	}
	return nil, ErrOrderNotFound
}

// UpdateStatus moves an order to a new lifecycle state.
func (s *orderService) UpdateStatus(id, status string) (*domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, ErrInvalidOrderStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			updated := s.orders[i]
			return &updated, nil
		}
	}
	return nil, ErrOrderNotFound
}

func (s *orderService) Stats() OrderStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := OrderStats{}
	today := s.now().Truncate(24 * time.Hour)
	for _, order := range s.orders {
		stats.TotalOrders++
		stats.TotalRevenue += order.Total
		if order.Status == domain.OrderPending {
			stats.PendingOrders++
		}
		if !order.CreatedAt.Before(today) {
			stats.TodayOrders++
		}
	}
	return stats
}

// Close cancels all outstanding simulated completions and waits for their
// goroutines to exit. Further submissions are rejected.
func (s *orderService) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	close(s.stop)
	s.wg.Wait()
}
