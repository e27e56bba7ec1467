// Package analytics derives admin dashboard figures from the live catalog.
package analytics

import "github.com/shopgenius/shopgenius-api/internal/models"

// lowStockThreshold matches the storefront's low-stock badge cutoff.
const lowStockThreshold = 10

// ProductStat is one bar of the stock chart: units on hand and their value.
type ProductStat struct {
	Name  string  `json:"name"`
	Stock int     `json:"stock"`
	Value float64 `json:"value"`
}

// Summary aggregates the catalog for the analytics view.
type Summary struct {
	TotalValue     float64        `json:"total_value"`
	AveragePrice   float64        `json:"average_price"`
	ProductCount   int            `json:"product_count"`
	LowStockCount  int            `json:"low_stock_count"`
	StockSeries    []ProductStat  `json:"stock_series"`
	CategoryCounts map[string]int `json:"category_counts"`
}

// Summarize computes the analytics summary. Pure function: the input slice is
// not modified and the series preserves catalog order.
func Summarize(products []models.Product) Summary {
	summary := Summary{
		ProductCount:   len(products),
		StockSeries:    make([]ProductStat, 0, len(products)),
		CategoryCounts: make(map[string]int),
	}

	var priceSum float64
	for _, p := range products {
		value := p.Price * float64(p.Stock)
		summary.StockSeries = append(summary.StockSeries, ProductStat{
			Name:  p.Name,
			Stock: p.Stock,
			Value: value,
		})
		summary.TotalValue += value
		summary.CategoryCounts[p.Category]++
		priceSum += p.Price
		if p.Stock < lowStockThreshold {
			summary.LowStockCount++
		}
	}

	if len(products) > 0 {
		summary.AveragePrice = priceSum / float64(len(products))
	}
	return summary
}
