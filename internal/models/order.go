package models

import "time"

// Payment methods accepted at checkout.
const (
	PaymentCard    = "card"
	PaymentOxxo    = "oxxo"
	PaymentMercado = "mercado"
)

// ValidPaymentMethod reports whether id is one of the accepted methods.
func ValidPaymentMethod(id string) bool {
	return id == PaymentCard || id == PaymentOxxo || id == PaymentMercado
}

// ShippingAddress captures the delivery details collected at checkout.
type ShippingAddress struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Phone   string `json:"phone"`
}

// Order is the immutable record produced by a successful checkout. Items is
// a snapshot taken before the cart is cleared and never aliases live cart
// state.
type Order struct {
	OrderID         string          `json:"orderId"`
	Items           []CartItem      `json:"items"`
	Subtotal        float64         `json:"subtotal"`
	Discount        float64         `json:"discount"`
	ShippingCost    float64         `json:"shippingCost"`
	Total           float64         `json:"total"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	CreatedAt       time.Time       `json:"createdAt"`
}
