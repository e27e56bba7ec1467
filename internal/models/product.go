package models

// Product represents a sellable item in the storefront catalog.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// CategoryAll is the sentinel category that matches every product.
const CategoryAll = "All"

// Categories is the fixed filter list offered by the storefront.
var Categories = []string{CategoryAll, "Electronics", "Fitness", "Apparel", "Home"}

// Query holds the current search/filter criteria applied to the catalog.
// A nil MaxPrice means no price ceiling.
type Query struct {
	Search   string
	Category string
	MaxPrice *float64
}
