package repo

import (
	"errors"
	"sync"

	"github.com/shopgenius/shopgenius-api/internal/models"
)

// ErrProductNotFound is returned when a product is not found in the catalog.
var ErrProductNotFound = errors.New("product not found")

// Catalog is the in-memory product store. Records are replaced wholesale on
// mutation, never updated in place, so slices handed out earlier stay valid.
type Catalog struct {
	mu       sync.RWMutex
	products []models.Product
}

// NewCatalog creates a catalog seeded with the given products. Insertion order
// is preserved for the lifetime of the store.
func NewCatalog(seed []models.Product) *Catalog {
	products := make([]models.Product, len(seed))
	copy(products, seed)
	return &Catalog{products: products}
}

// GetAll retrieves all products in insertion order.
func (c *Catalog) GetAll() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// GetByID retrieves a product by its ID.
func (c *Catalog) GetByID(id string) (models.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// AdjustStock applies delta to the product's stock, clamping at zero. An
// unknown id is a silent no-op: the catalog is left untouched and ok is false.
// No error is ever surfaced.
func (c *Catalog) AdjustStock(id string, delta int) (models.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, p := range c.products {
		if p.ID != id {
			continue
		}
		updated := p
		updated.Stock = p.Stock + delta
		if updated.Stock < 0 {
			updated.Stock = 0
		}
		c.products[i] = updated
		return updated, true
	}
	return models.Product{}, false
}

// Len reports the number of products in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}
