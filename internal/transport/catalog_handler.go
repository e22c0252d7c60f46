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

// ProductListResponse is the listing page payload: the visible products under
// the effective criteria, plus counts for the "showing X of Y" header.
type ProductListResponse struct {
	Products []domain.Product      `json:"products"`
	Count    int                   `json:"count"`
	Total    int                   `json:"total"`
	Criteria domain.FilterCriteria `json:"criteria"`
}

// ProductDetailResponse is the product page payload.
type ProductDetailResponse struct {
	Product    domain.Product   `json:"product"`
	Related    []domain.Product `json:"related"`
	InWishlist bool             `json:"in_wishlist"`
}

// CatalogHandler serves the read-only catalog and the filtered listings.
type CatalogHandler struct {
	catalog catalog.Provider
	store   *store.Store
	logger  *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(provider catalog.Provider, st *store.Store, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: provider,
		store:   st,
		logger:  logger,
	}
}

// RegisterRoutes registers all catalog routes
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/products", h.ListProducts)
		r.Get("/products/{id}", h.GetProduct)
		r.Get("/categories", h.ListCategories)
		r.Get("/price-ranges", h.ListPriceRanges)
		r.Get("/locations/wilayas", h.ListWilayas)
		r.Get("/locations/wilayas/{wilaya}/communes", h.ListCommunes)
	})
}

// ListProducts returns the visible product list. The stored filter criteria
// apply by default; query parameters override individual fields for the
// request without mutating the store.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	criteria := h.store.Criteria()

	query := r.URL.Query()
	if q := query.Get("q"); q != "" {
		criteria.SearchQuery = q
	}
	if category := query.Get("category"); category != "" {
		criteria.SelectedCategory = category
	}
	if ranges, ok := query["price_range"]; ok {
		criteria.SelectedPriceRange = ranges
	}
	if sortBy := query.Get("sort"); sortBy != "" {
		criteria.SortBy = sortBy
	}

	all := h.catalog.Products()
	visible := catalog.Visible(all, criteria, h.catalog.PriceRanges())

	middleware.RespondWithJSON(w, http.StatusOK, ProductListResponse{
		Products: visible,
		Count:    len(visible),
		Total:    len(all),
		Criteria: criteria,
	})
}

// GetProduct returns one product with its related products.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.catalog.FindProduct(id)
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, ProductDetailResponse{
		Product:    *product,
		Related:    h.catalog.Related(id, 3),
		InWishlist: h.store.IsInWishlist(id),
	})
}

// ListCategories returns the category labels, no-filter sentinel first.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"categories": h.catalog.Categories(),
	})
}

// ListPriceRanges returns the price filter buckets.
func (h *CatalogHandler) ListPriceRanges(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"price_ranges": h.catalog.PriceRanges(),
	})
}

// ListWilayas returns the delivery regions.
func (h *CatalogHandler) ListWilayas(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"wilayas": h.catalog.Wilayas(),
	})
}

// ListCommunes returns the communes of one wilaya.
func (h *CatalogHandler) ListCommunes(w http.ResponseWriter, r *http.Request) {
	wilaya := chi.URLParam(r, "wilaya")

	communes, err := h.catalog.Communes(wilaya)
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "wilaya not found")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"wilaya":   wilaya,
		"communes": communes,
	})
}
