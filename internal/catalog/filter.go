package catalog

import (
	"sort"
	"strings"

	"storefront/internal/models"
)

// Sort orders for product listings.
type SortOrder string

const (
	SortRelevance SortOrder = "relevance" // catalog order
	SortNewest    SortOrder = "newest"    // descending by id
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
	SortRating    SortOrder = "rating"
)

// Filter selects and orders a product listing. Category and Search are
// mutually exclusive upstream (last writer wins); when both arrive here the
// product must satisfy both. Zero values match everything.
type Filter struct {
	Category string
	Search   string
	Brand    string
	Color    string
	Size     string
	Sort     SortOrder
}

// Search applies the filter as a pure function over the catalog and returns
// a fresh slice, so concurrent callers never share mutable state.
func (c *Catalog) Search(f Filter) []models.Product {
	out := make([]models.Product, 0, len(c.products))
	query := strings.ToLower(strings.TrimSpace(f.Search))
	for _, p := range c.products {
		if f.Category != "" && f.Category != "all" && p.Category != f.Category {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		if f.Brand != "" && p.Brand != f.Brand {
			continue
		}
		if f.Color != "" && !containsString(p.Colors, f.Color) {
			continue
		}
		if f.Size != "" && !containsString(p.Sizes, f.Size) {
			continue
		}
		out = append(out, p)
	}
	sortProducts(out, f.Sort)
	return out
}

func matchesQuery(p models.Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Category), query)
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}

func sortProducts(products []models.Product, order SortOrder) {
	switch order {
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ID > products[j].ID
		})
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() < products[j].EffectivePrice()
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() > products[j].EffectivePrice()
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	default:
		// relevance: keep catalog order
	}
}
