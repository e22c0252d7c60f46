package transport

import (
	"net/http"

	"souq-tech/internal/catalog"
	"souq-tech/internal/middleware"
	"souq-tech/internal/service"
	"souq-tech/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SubmitOrderRequest is the checkout form. Every address field is required;
// the order form validation lives here, not in the order service.
type SubmitOrderRequest struct {
	FullName      string `json:"full_name" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Wilaya        string `json:"wilaya" validate:"required"`
	Commune       string `json:"commune" validate:"required"`
	StreetAddress string `json:"street_address" validate:"required"`
	ProductID     int    `json:"product_id" validate:"required"`
	Quantity      int    `json:"quantity" validate:"omitempty,gte=1"`
}

// UpdateOrderStatusRequest moves an order between lifecycle states.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed delivered cancelled"`
}

// OrderHandler handles order submission and the admin order dashboard.
type OrderHandler struct {
	orders  service.OrderService
	catalog catalog.Provider
	store   *store.Store
	logger  *zap.Logger
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orders service.OrderService, provider catalog.Provider, st *store.Store, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orders:  orders,
		catalog: provider,
		store:   st,
		logger:  logger,
	}
}

// RegisterRoutes registers the public order route and the admin dashboard
// routes behind auth + admin middleware.
func (h *OrderHandler) RegisterRoutes(r chi.Router, authMiddleware, adminMiddleware func(http.Handler) http.Handler) {
	r.Post("/api/orders", h.SubmitOrder)

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(adminMiddleware)

		r.Get("/orders", h.ListOrders)
		r.Patch("/orders/{id}/status", h.UpdateOrderStatus)
		r.Get("/stats", h.GetStats)
		r.Get("/notifications", h.ListNotifications)
		r.Post("/notifications/{id}/read", h.MarkNotificationRead)
		r.Delete("/notifications", h.ClearNotifications)
	})
}

// SubmitOrder accepts the checkout form and returns a pending ticket
// immediately; the simulated processing completes in the background.
func (h *OrderHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	var req SubmitOrderRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Order validation failed", zap.Error(err))
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.catalog.FindProduct(req.ProductID)
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	ticket, err := h.orders.SubmitOrder(r.Context(), service.OrderRequest{
		FullName:      req.FullName,
		Phone:         req.Phone,
		Wilaya:        req.Wilaya,
		Commune:       req.Commune,
		StreetAddress: req.StreetAddress,
		Product:       *product,
		Quantity:      quantity,
	})
	if err != nil {
		h.logger.Error("Order submission failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusServiceUnavailable, "failed to submit order")
		return
	}

	middleware.RespondWithJSON(w, http.StatusAccepted, ticket)
}

// ListOrders returns the order book, optionally narrowed by ?search= and
// ?status=.
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.orders.ListOrders(r.URL.Query().Get("search"), r.URL.Query().Get("status"))
	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"orders": orders,
		"count":  len(orders),
	})
}

// UpdateOrderStatus moves an order to a new status.
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateOrderStatusRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.orders.UpdateStatus(chi.URLParam(r, "id"), req.Status)
	if err != nil {
		if err == service.ErrOrderNotFound {
			middleware.RespondWithError(w, http.StatusNotFound, "order not found")
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid order status")
		return
	}

	h.logger.Info("Order status updated",
		zap.String("order_number", order.OrderNumber),
		zap.String("status", order.Status),
	)
	middleware.RespondWithJSON(w, http.StatusOK, order)
}

// GetStats returns the dashboard summary numbers.
func (h *OrderHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.orders.Stats())
}

// ListNotifications returns the admin notification log, newest first.
func (h *OrderHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": h.store.Notifications(),
		"unread":        h.store.UnreadNotificationsCount(),
	})
}

// MarkNotificationRead flags a notification as read. Unknown IDs succeed.
func (h *OrderHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	h.store.MarkNotificationAsRead(chi.URLParam(r, "id"))
	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"unread": h.store.UnreadNotificationsCount(),
	})
}

// ClearNotifications empties the notification log.
func (h *OrderHandler) ClearNotifications(w http.ResponseWriter, r *http.Request) {
	h.store.ClearNotifications()
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "notifications cleared"})
}
