package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"storefront/internal/models"
)

//go:embed data/products.json
var seedData []byte

// Load builds the catalog from the embedded product data. This is the
// default catalog source when no Mongo URI is configured.
func Load() (*Catalog, error) {
	var products []models.Product
	if err := json.Unmarshal(seedData, &products); err != nil {
		return nil, fmt.Errorf("parse embedded catalog: %w", err)
	}
	return New(products)
}
