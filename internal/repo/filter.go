package repo

import (
	"strings"

	"github.com/shopgenius/shopgenius-api/internal/models"
)

func matchesQuery(p models.Product, q models.Query) bool {
	if q.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(q.Search)) {
		return false
	}
	if q.Category != "" && q.Category != models.CategoryAll && p.Category != q.Category {
		return false
	}
	if q.MaxPrice != nil && p.Price > *q.MaxPrice {
		return false
	}
	return true
}

// FilterProducts derives the displayable product list for a query. All three
// criteria must hold: case-insensitive substring match on the name, exact
// category match unless the query asks for "All", and an inclusive price
// ceiling. The relative order of the input is preserved and the input slice is
// never modified.
func FilterProducts(products []models.Product, q models.Query) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matchesQuery(p, q) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
