package transport

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"souq-tech/internal/catalog"
	"souq-tech/internal/middleware"
	"souq-tech/internal/service"
	"souq-tech/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const testJWTSecret = "test-secret"

// testEnv wires the handlers over real services, the way the server does.
type testEnv struct {
	router *chi.Mux
	store  *store.Store
	orders service.OrderService
	auth   service.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := zap.NewNop()
	provider := catalog.NewSeedProvider()
	st := store.New(logger, nil)

	orders := service.NewOrderService(logger, st, time.Millisecond, nil)
	t.Cleanup(orders.Close)

	auth, err := service.NewAuthService(testJWTSecret, service.SeedAdmin{
		Email:    "admin@souq-tech.dz",
		Password: "admin123",
		Name:     "المدير",
		Phone:    "0550000000",
	})
	if err != nil {
		t.Fatal(err)
	}

	router := chi.NewRouter()
	authMiddleware := middleware.AuthMiddleware(testJWTSecret, logger)
	adminMiddleware := middleware.RequireAdmin(logger)

	NewCatalogHandler(provider, st, logger).RegisterRoutes(router)
	NewStoreHandler(st, provider, logger).RegisterRoutes(router)
	NewOrderHandler(orders, provider, st, logger).RegisterRoutes(router, authMiddleware, adminMiddleware)
	NewAuthHandler(auth, logger).RegisterRoutes(router, authMiddleware)

	return &testEnv{router: router, store: st, orders: orders, auth: auth}
}

// do runs a JSON request through the router.
func (e *testEnv) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// adminToken logs in as the seeded admin.
func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()
	token, _, err := e.auth.Login("admin@souq-tech.dz", "admin123")
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), into); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}
