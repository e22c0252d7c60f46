package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"souq-tech/internal/catalog"

	"go.uber.org/zap"
)

var feedCustomers = []struct {
	name   string
	wilaya string
}{
	{"أحمد محمد", "الجزائر"},
	{"فاطمة علي", "وهران"},
	{"محمد سالم", "قسنطينة"},
	{"نورا أحمد", "عنابة"},
	{"خالد عبدالله", "سطيف"},
}

// OrderFeed simulates customers placing orders: on every tick it submits a
// fabricated order with the configured probability. It exists so the admin
// dashboard has live data to show without a real customer base.
type OrderFeed struct {
	logger      *zap.Logger
	orders      OrderService
	catalog     catalog.Provider
	interval    time.Duration
	probability float64
	rng         *rand.Rand

	done chan struct{}
}

// NewOrderFeed creates a feed submitting through the given order service.
func NewOrderFeed(logger *zap.Logger, orders OrderService, provider catalog.Provider, interval time.Duration, probability float64) *OrderFeed {
	return &OrderFeed{
		logger:      logger,
		orders:      orders,
		catalog:     provider,
		interval:    interval,
		probability: probability,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		done:        make(chan struct{}),
	}
}

// Start runs the feed until ctx is cancelled.
func (f *OrderFeed) Start(ctx context.Context) {
	go func() {
		defer close(f.done)

		ticker := time.NewTicker(f.interval)
		defer ticker.Stop()

		f.logger.Info("Simulated order feed started",
			zap.Duration("interval", f.interval),
			zap.Float64("probability", f.probability),
		)

		for {
			select {
			case <-ctx.Done():
				f.logger.Info("Simulated order feed stopped")
				return
			case <-ticker.C:
				if f.rng.Float64() < f.probability {
					f.placeRandomOrder(ctx)
				}
			}
		}
	}()
}

// Wait blocks until the feed goroutine has exited.
func (f *OrderFeed) Wait() {
	<-f.done
}

func (f *OrderFeed) placeRandomOrder(ctx context.Context) {
	products := f.catalog.Products()
	if len(products) == 0 {
		return
	}

	product := products[f.rng.Intn(len(products))]
	customer := feedCustomers[f.rng.Intn(len(feedCustomers))]

	communes, err := f.catalog.Communes(customer.wilaya)
	if err != nil || len(communes) == 0 {
		communes = []string{customer.wilaya}
	}

	req := OrderRequest{
		FullName:      customer.name,
		Phone:         fmt.Sprintf("05%08d", f.rng.Intn(100000000)),
		Wilaya:        customer.wilaya,
		Commune:       communes[f.rng.Intn(len(communes))],
		StreetAddress: fmt.Sprintf("حي النموذجي، شارع %d", f.rng.Intn(100)),
		Product:       product,
		Quantity:      1,
	}

	ticket, err := f.orders.SubmitOrder(ctx, req)
	if err != nil {
		f.logger.Warn("Simulated order rejected", zap.Error(err))
		return
	}

	f.logger.Debug("Simulated order placed",
		zap.String("order_number", ticket.OrderNumber),
		zap.String("customer", req.FullName),
	)
}
