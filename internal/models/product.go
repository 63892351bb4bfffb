package models

// Review is a single customer review attached to a product.
type Review struct {
	ID      int     `bson:"id" json:"id"`
	Author  string  `bson:"author" json:"author"`
	Rating  float64 `bson:"rating" json:"rating"`
	Comment string  `bson:"comment" json:"comment"`
}

// Product is a catalog entry. The catalog is loaded once at startup and
// products are never mutated afterwards, so values are shared freely.
type Product struct {
	ID            int      `bson:"id" json:"id"`
	Name          string   `bson:"name" json:"name"`
	Category      string   `bson:"category" json:"category"`
	Brand         string   `bson:"brand" json:"brand"`
	Price         float64  `bson:"price" json:"price"`
	DiscountPrice *float64 `bson:"discountPrice,omitempty" json:"discountPrice,omitempty"`
	Description   string   `bson:"description,omitempty" json:"description,omitempty"`
	Images        []string `bson:"images" json:"images"`
	Rating        float64  `bson:"rating" json:"rating"`
	Reviews       []Review `bson:"reviews" json:"reviews"`
	Stock         int      `bson:"stock" json:"stock"`
	Colors        []string `bson:"colors" json:"colors"`
	Sizes         []string `bson:"sizes" json:"sizes"`
}

// IsOnSale reports whether the discount price applies. A discount at or
// above the regular price is ignored rather than honored.
func (p Product) IsOnSale() bool {
	return p.DiscountPrice != nil && *p.DiscountPrice > 0 && *p.DiscountPrice < p.Price
}

// EffectivePrice returns the discount price when on sale, else the regular price.
func (p Product) EffectivePrice() float64 {
	if p.IsOnSale() {
		return *p.DiscountPrice
	}
	return p.Price
}

// InStock is display information only; cart operations never enforce stock.
func (p Product) InStock() bool {
	return p.Stock > 0
}
