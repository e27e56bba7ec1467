package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/shopgenius/shopgenius-api/internal/http/handlers"
)

func TestGetProductsHandler_All(t *testing.T) {
	r := newRouter(t, stubGenerator{})

	w := doRequest(t, r, http.MethodGet, "/products", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var result handlers.ProductsSearchResult
	decodeBody(t, w, &result)
	if result.Meta.TotalCount != 6 {
		t.Errorf("expected 6 products, got %d", result.Meta.TotalCount)
	}
	if result.Data[0].ID != "1" || result.Data[5].ID != "6" {
		t.Errorf("expected catalog order preserved, got first=%s last=%s", result.Data[0].ID, result.Data[5].ID)
	}
}

func TestGetProductsHandler_Filtered(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantIDs []string
	}{
		{name: "Search", path: "/products?q=smart", wantIDs: []string{"1", "5"}},
		{name: "Category", path: "/products?category=Fitness", wantIDs: []string{"2", "6"}},
		{name: "All category sentinel", path: "/products?category=All&q=aero", wantIDs: []string{"6"}},
		{name: "Price ceiling inclusive", path: "/products?max_price=75.50", wantIDs: []string{"2", "4", "5"}},
		{name: "Combined", path: "/products?q=e&category=Electronics&max_price=250", wantIDs: []string{"1"}},
		{name: "No match", path: "/products?q=quantum", wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(t, stubGenerator{})
			w := doRequest(t, r, http.MethodGet, tt.path, nil)

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200 OK, got %d", w.Code)
			}
			var result handlers.ProductsSearchResult
			decodeBody(t, w, &result)
			if len(result.Data) != len(tt.wantIDs) {
				t.Fatalf("expected %d products, got %d", len(tt.wantIDs), len(result.Data))
			}
			for i, want := range tt.wantIDs {
				if result.Data[i].ID != want {
					t.Errorf("expected id %s at position %d, got %s", want, i, result.Data[i].ID)
				}
			}
		})
	}
}

func TestGetProductsHandler_InvalidMaxPrice(t *testing.T) {
	r := newRouter(t, stubGenerator{})

	w := doRequest(t, r, http.MethodGet, "/products?max_price=abc", nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}
}

func TestAdjustStockHandler(t *testing.T) {
	r := newRouter(t, stubGenerator{})

	w := doRequest(t, r, http.MethodPost, "/products/2/stock", handlers.StockAdjustmentRequest{Delta: -5})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp handlers.ProductResponse
	decodeBody(t, w, &resp)
	if resp.Stock != 7 {
		t.Errorf("expected stock 7, got %d", resp.Stock)
	}
	if !resp.LowStock {
		t.Error("expected low_stock flag at stock 7")
	}
}

func TestAdjustStockHandler_ClampsAtZero(t *testing.T) {
	r := newRouter(t, stubGenerator{})

	// product 5 seeds with stock 3
	w := doRequest(t, r, http.MethodPost, "/products/5/stock", handlers.StockAdjustmentRequest{Delta: -10})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp handlers.ProductResponse
	decodeBody(t, w, &resp)
	if resp.Stock != 0 {
		t.Errorf("expected stock clamped to 0, got %d", resp.Stock)
	}
}

func TestAdjustStockHandler_UnknownProduct(t *testing.T) {
	r := newRouter(t, stubGenerator{})

	w := doRequest(t, r, http.MethodPost, "/products/999/stock", handlers.StockAdjustmentRequest{Delta: 1})

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 Not Found, got %d", w.Code)
	}

	// catalog unchanged
	w = doRequest(t, r, http.MethodGet, "/products", nil)
	var result handlers.ProductsSearchResult
	decodeBody(t, w, &result)
	if result.Meta.TotalCount != 6 {
		t.Errorf("expected 6 products after no-op, got %d", result.Meta.TotalCount)
	}
}

func TestAdjustStockHandler_InvalidBody(t *testing.T) {
	r := newRouter(t, stubGenerator{})

	req := doRequest(t, r, http.MethodPost, "/products/1/stock", "not an object")
	if req.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", req.Code)
	}
}

func TestGetCategoriesHandler(t *testing.T) {
	r := newRouter(t, stubGenerator{})

	w := doRequest(t, r, http.MethodGet, "/categories", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var result handlers.CategoriesResult
	decodeBody(t, w, &result)
	want := []string{"All", "Electronics", "Fitness", "Apparel", "Home"}
	if fmt.Sprint(result.Data) != fmt.Sprint(want) {
		t.Errorf("expected categories %v, got %v", want, result.Data)
	}
}

func TestHealthHandler(t *testing.T) {
	r := newRouter(t, stubGenerator{})

	w := doRequest(t, r, http.MethodGet, "/healthz", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
}
