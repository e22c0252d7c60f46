package transport

import (
	"net/http"
	"strconv"

	"souq-tech/internal/catalog"
	"souq-tech/internal/domain"
	"souq-tech/internal/middleware"
	"souq-tech/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AddCartItemRequest adds a catalog product to the cart.
type AddCartItemRequest struct {
	ProductID int `json:"product_id" validate:"required"`
	Quantity  int `json:"quantity" validate:"omitempty,gte=1"`
}

// UpdateCartItemRequest replaces a cart item's quantity. Zero and negative
// quantities are legal and remove the item, so the field is a pointer to
// tell "0" apart from "absent".
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// AddWishlistItemRequest adds a catalog product to the wishlist.
type AddWishlistItemRequest struct {
	ProductID int `json:"product_id" validate:"required"`
}

// UpdateFiltersRequest partially updates the filter criteria; nil fields are
// left untouched.
type UpdateFiltersRequest struct {
	SearchQuery        *string   `json:"search_query"`
	SelectedCategory   *string   `json:"selected_category"`
	SelectedPriceRange *[]string `json:"selected_price_range"`
	SortBy             *string   `json:"sort_by"`
}

// CartResponse is the cart sheet payload.
type CartResponse struct {
	Items []domain.CartItem `json:"items"`
	Total float64           `json:"total"`
	Count int               `json:"count"`
}

// WishlistResponse is the wishlist sheet payload.
type WishlistResponse struct {
	Items []domain.Product `json:"items"`
	Count int              `json:"count"`
}

// StoreHandler exposes the cart, wishlist, and filter state over HTTP.
type StoreHandler struct {
	store   *store.Store
	catalog catalog.Provider
	logger  *zap.Logger
}

// NewStoreHandler creates a new StoreHandler
func NewStoreHandler(st *store.Store, provider catalog.Provider, logger *zap.Logger) *StoreHandler {
	return &StoreHandler{
		store:   st,
		catalog: provider,
		logger:  logger,
	}
}

// RegisterRoutes registers all cart, wishlist, and filter routes
func (h *StoreHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/cart", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Delete("/", h.ClearCart)
		r.Post("/items", h.AddCartItem)
		r.Put("/items/{id}", h.UpdateCartItem)
		r.Delete("/items/{id}", h.RemoveCartItem)
	})

	r.Route("/api/wishlist", func(r chi.Router) {
		r.Get("/", h.GetWishlist)
		r.Delete("/", h.ClearWishlist)
		r.Post("/items", h.AddWishlistItem)
		r.Get("/items/{id}", h.CheckWishlistItem)
		r.Delete("/items/{id}", h.RemoveWishlistItem)
	})

	r.Route("/api/filters", func(r chi.Router) {
		r.Get("/", h.GetFilters)
		r.Put("/", h.UpdateFilters)
		r.Delete("/", h.ClearFilters)
	})
}

// GetCart returns the cart with its derived total and item count.
func (h *StoreHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, CartResponse{
		Items: h.store.CartItems(),
		Total: h.store.CartTotal(),
		Count: h.store.CartItemsCount(),
	})
}

// AddCartItem resolves the product from the catalog and adds it to the cart.
// A missing quantity defaults to 1.
func (h *StoreHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
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

	if err := h.store.AddToCart(*product, quantity); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "quantity must be greater than 0")
		return
	}

	h.logger.Info("Product added to cart",
		zap.Int("product_id", product.ID),
		zap.Int("quantity", quantity),
	)
	h.GetCart(w, r)
}

// UpdateCartItem sets a cart item's quantity; zero or less removes it.
func (h *StoreHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req UpdateCartItemRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.store.UpdateQuantity(productID, *req.Quantity)
	h.GetCart(w, r)
}

// RemoveCartItem deletes a cart item; removing an absent item succeeds.
func (h *StoreHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	h.store.RemoveFromCart(productID)
	h.GetCart(w, r)
}

// ClearCart empties the cart.
func (h *StoreHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.store.ClearCart()
	h.GetCart(w, r)
}

// GetWishlist returns the wishlist.
func (h *StoreHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	items := h.store.WishlistItems()
	middleware.RespondWithJSON(w, http.StatusOK, WishlistResponse{
		Items: items,
		Count: len(items),
	})
}

// AddWishlistItem adds a product to the wishlist. Repeat adds are no-ops.
func (h *StoreHandler) AddWishlistItem(w http.ResponseWriter, r *http.Request) {
	var req AddWishlistItemRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
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

	h.store.AddToWishlist(*product)
	h.GetWishlist(w, r)
}

// CheckWishlistItem reports wishlist membership for one product.
func (h *StoreHandler) CheckWishlistItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"product_id":  productID,
		"in_wishlist": h.store.IsInWishlist(productID),
	})
}

// RemoveWishlistItem removes a product from the wishlist.
func (h *StoreHandler) RemoveWishlistItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	h.store.RemoveFromWishlist(productID)
	h.GetWishlist(w, r)
}

// ClearWishlist empties the wishlist.
func (h *StoreHandler) ClearWishlist(w http.ResponseWriter, r *http.Request) {
	h.store.ClearWishlist()
	h.GetWishlist(w, r)
}

// GetFilters returns the current filter criteria.
func (h *StoreHandler) GetFilters(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.store.Criteria())
}

// UpdateFilters applies the provided criteria fields through the store's
// setters. Values are not validated against the known categories or sort
// orders; unknown values simply match nothing or sort as featured.
func (h *StoreHandler) UpdateFilters(w http.ResponseWriter, r *http.Request) {
	var req UpdateFiltersRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.SearchQuery != nil {
		h.store.SetSearchQuery(*req.SearchQuery)
	}
	if req.SelectedCategory != nil {
		h.store.SetSelectedCategory(*req.SelectedCategory)
	}
	if req.SelectedPriceRange != nil {
		h.store.SetSelectedPriceRange(*req.SelectedPriceRange)
	}
	if req.SortBy != nil {
		h.store.SetSortBy(*req.SortBy)
	}

	middleware.RespondWithJSON(w, http.StatusOK, h.store.Criteria())
}

// ClearFilters resets the criteria to defaults.
func (h *StoreHandler) ClearFilters(w http.ResponseWriter, r *http.Request) {
	h.store.ClearFilters()
	middleware.RespondWithJSON(w, http.StatusOK, h.store.Criteria())
}
