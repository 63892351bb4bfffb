package models

// CartItem is one product line in a cart. The cart holds at most one line
// per product id; repeated adds merge into the existing line's quantity.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal is the effective price times quantity.
func (i CartItem) LineTotal() float64 {
	return i.Product.EffectivePrice() * float64(i.Quantity)
}
