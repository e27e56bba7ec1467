package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopgenius/shopgenius-api/internal/models"
	"github.com/shopgenius/shopgenius-api/internal/repo"
	"go.uber.org/zap"
)

// GetProductsHandler godoc
// @Summary List products matching the current storefront query
// @Description Applies search text, category and price ceiling filters; all parameters optional
// @Tags products
// @Produce json
// @Param q query string false "Case-insensitive substring match on name"
// @Param category query string false "Exact category, or All"
// @Param max_price query number false "Inclusive price ceiling"
// @Success 200 {object} ProductsSearchResult
// @Failure 400 {string} string "Invalid max_price"
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	query := models.Query{
		Search:   r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
	}
	if raw := r.URL.Query().Get("max_price"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			http.Error(w, "invalid max_price", http.StatusBadRequest)
			return
		}
		query.MaxPrice = &maxPrice
	}

	filtered := repo.FilterProducts(catalog.GetAll(), query)
	result := ProductsSearchResult{
		Data: make([]ProductResponse, len(filtered)),
		Meta: Meta{TotalCount: len(filtered)},
	}
	for i, p := range filtered {
		result.Data[i] = toProductResponse(p)
	}
	writeJSON(w, http.StatusOK, result)
}

// AdjustStockHandler godoc
// @Summary Adjust a product's stock level
// @Description Applies a positive or negative delta; stock is clamped at zero
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param adjustment body StockAdjustmentRequest true "Stock delta"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Not found"
// @Router /products/{id}/stock [post]
func AdjustStockHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req StockAdjustmentRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	updated, ok := catalog.AdjustStock(id, req.Delta)
	if !ok {
		// The store treats an unknown id as a silent no-op; only the HTTP
		// surface reports it.
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	logger.Info("stock adjusted",
		zap.String("product_id", id),
		zap.Int("delta", req.Delta),
		zap.Int("stock", updated.Stock),
	)
	writeJSON(w, http.StatusOK, toProductResponse(updated))
}

// GetCategoriesHandler godoc
// @Summary List the storefront category filter options
// @Tags products
// @Produce json
// @Success 200 {object} CategoriesResult
// @Router /categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CategoriesResult{Data: models.Categories})
}

// HealthHandler godoc
// @Summary Health probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
