package server

import (
	"fmt"
	"net/http"
	"time"

	"souq-tech/internal/catalog"
	"souq-tech/internal/config"
	custommiddleware "souq-tech/internal/middleware"
	"souq-tech/internal/service"
	"souq-tech/internal/store"
	"souq-tech/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Server wires the storefront handlers onto a chi router. The redis client is
// optional: without it the rate limiter is skipped and the store runs
// memory-only.
type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	redis  *redis.Client
}

// Deps are the constructed collaborators the server exposes over HTTP.
type Deps struct {
	Catalog catalog.Provider
	Store   *store.Store
	Orders  service.OrderService
	Auth    service.AuthService
	Redis   *redis.Client
}

func NewServer(cfg *config.Config, logger *zap.Logger, deps Deps) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(nil, cfg.Server.Env != "production"))

	if deps.Redis != nil {
		router.Use(custommiddleware.RateLimitMiddleware(deps.Redis, custommiddleware.RateLimitConfig{
			RequestsPerWindow: 300,
			Window:            time.Minute,
			KeyPrefix:         "souq-tech:ratelimit",
		}, logger))
	}

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Initialize handlers
	catalogHandler := transport.NewCatalogHandler(deps.Catalog, deps.Store, logger)
	storeHandler := transport.NewStoreHandler(deps.Store, deps.Catalog, logger)
	orderHandler := transport.NewOrderHandler(deps.Orders, deps.Catalog, deps.Store, logger)
	authHandler := transport.NewAuthHandler(deps.Auth, logger)

	// Create middleware for protected routes
	authMiddleware := custommiddleware.AuthMiddleware(cfg.JWT.Secret, logger)
	adminMiddleware := custommiddleware.RequireAdmin(logger)

	// Register routes
	catalogHandler.RegisterRoutes(router)
	storeHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router, authMiddleware, adminMiddleware)
	authHandler.RegisterRoutes(router, authMiddleware)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		redis:  deps.Redis,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
