package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"souq-tech/internal/catalog"
	"souq-tech/internal/config"
	"souq-tech/internal/logger"
	"souq-tech/internal/server"
	"souq-tech/internal/service"
	"souq-tech/internal/store"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func gracefulShutdown(apiServer *server.Server, st *store.Store, orders service.OrderService, stopFeed context.CancelFunc, log *zap.Logger, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Info("Shutting down gracefully, press Ctrl+C again to force")
	stop() // Allow Ctrl+C to force shutdown

	// Stop the simulated order feed and cancel outstanding order completions
	// before the store goes away.
	stopFeed()
	orders.Close()

	// Write a final snapshot so the cart and wishlist survive the restart.
	st.Flush()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := apiServer.Close(); err != nil {
		log.Error("Error closing server resources", zap.Error(err))
	}

	log.Info("Server exiting")

	done <- true
}

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting storefront API",
		zap.String("env", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
	)

	// Connect redis for snapshot persistence and rate limiting. The store
	// must keep working without it, so a failed ping only downgrades to
	// memory-only mode.
	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	var snapshots store.Snapshotter
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Warn("Redis unavailable, store runs memory-only", zap.Error(err))
		redisClient.Close()
		redisClient = nil
	} else {
		snapshots = store.NewRedisSnapshotter(redisClient, cfg.Store.SnapshotKey)
	}
	cancelPing()

	// Build the catalog, the state store, and the services
	provider := catalog.NewSeedProvider()
	st := store.New(log, snapshots)

	orders := service.NewOrderService(log, st, cfg.Orders.SubmitDelay, nil)

	auth, err := service.NewAuthService(cfg.JWT.Secret, service.SeedAdmin{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
		Name:     cfg.Admin.Name,
		Phone:    cfg.Admin.Phone,
	})
	if err != nil {
		log.Fatal("Failed to initialize auth service", zap.Error(err))
	}

	// Start the simulated order feed for the admin dashboard
	feedCtx, stopFeed := context.WithCancel(context.Background())
	if cfg.Orders.FeedProbability > 0 {
		feed := service.NewOrderFeed(log, orders, provider, cfg.Orders.FeedInterval, cfg.Orders.FeedProbability)
		feed.Start(feedCtx)
	}

	// Create server
	srv := server.NewServer(cfg, log, server.Deps{
		Catalog: provider,
		Store:   st,
		Orders:  orders,
		Auth:    auth,
		Redis:   redisClient,
	})

	// Create a done channel to signal when the shutdown is complete
	done := make(chan bool, 1)

	// Run graceful shutdown in a separate goroutine
	go gracefulShutdown(srv, st, orders, stopFeed, log, done)

	log.Info("Server listening", zap.String("addr", srv.Addr))

	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal("HTTP server error", zap.Error(err))
	}

	// Wait for the graceful shutdown to complete
	<-done
	log.Info("Graceful shutdown complete")
}
