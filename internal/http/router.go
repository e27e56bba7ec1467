package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopgenius/shopgenius-api/internal/http/handlers"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)

	r.Get("/healthz", handlers.HealthHandler)
	r.Get("/products", handlers.GetProductsHandler)
	r.Post("/products/{id}/stock", handlers.AdjustStockHandler)
	r.Get("/categories", handlers.GetCategoriesHandler)
	r.Get("/analytics/summary", handlers.GetAnalyticsSummaryHandler)

	r.Group(func(r chi.Router) {
		r.Use(RateLimitMiddleware)
		r.Get("/insights", handlers.GetInsightsHandler)
		r.Post("/campaigns/draft", handlers.GenerateCampaignHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler())
	return r
}
