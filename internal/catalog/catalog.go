package catalog

import (
	"fmt"

	"storefront/internal/models"
)

// Catalog is the immutable list of sellable products. It is built once at
// startup and only read afterwards, so lookups are safe from any goroutine.
type Catalog struct {
	products []models.Product
	byID     map[int]models.Product
}

// New validates the product records and builds the catalog. Catalog order is
// preserved; it is the "relevance" sort order.
func New(products []models.Product) (*Catalog, error) {
	byID := make(map[int]models.Product, len(products))
	for _, p := range products {
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		if p.Name == "" {
			return nil, fmt.Errorf("product %d has no name", p.ID)
		}
		if len(p.Images) == 0 {
			return nil, fmt.Errorf("product %d has no images", p.ID)
		}
		if p.Price <= 0 {
			return nil, fmt.Errorf("product %d has invalid price %v", p.ID, p.Price)
		}
		if p.DiscountPrice != nil && *p.DiscountPrice >= p.Price {
			return nil, fmt.Errorf("product %d discount price %v is not below price %v", p.ID, *p.DiscountPrice, p.Price)
		}
		if p.Stock < 0 {
			return nil, fmt.Errorf("product %d has negative stock", p.ID)
		}
		if p.Rating < 0 || p.Rating > 5 {
			return nil, fmt.Errorf("product %d rating %v out of range", p.ID, p.Rating)
		}
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}, nil
}

// ByID looks up a product.
func (c *Catalog) ByID(id int) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Products returns every product in catalog order. Callers must not mutate
// the returned slice.
func (c *Catalog) Products() []models.Product {
	return c.products
}

// Len is the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Categories returns the distinct category tags in first-seen order.
func (c *Catalog) Categories() []string {
	return c.distinct(func(p models.Product) string { return p.Category })
}

// Brands returns the distinct brands in first-seen order.
func (c *Catalog) Brands() []string {
	return c.distinct(func(p models.Product) string { return p.Brand })
}

func (c *Catalog) distinct(key func(models.Product) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range c.products {
		k := key(p)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
