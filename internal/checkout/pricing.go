package checkout

import (
	"errors"
	"strings"
)

// Orders over the threshold ship free; everything else pays the flat fee.
// The threshold is strictly greater-than and is always evaluated against
// the pre-discount subtotal, so a coupon never changes the shipping tier.
const (
	FreeShippingThreshold = 999.0
	FlatShippingFee       = 150.0
)

// The welcome coupon takes 10% off the subtotal. Matching is
// case-insensitive and discounts never stack.
const (
	CouponCode = "BIENVENIDA10"
	couponRate = 0.10
)

// ErrInvalidCoupon rejects any code other than the welcome coupon.
var ErrInvalidCoupon = errors.New("Cupón no válido")

// CouponDiscountRate resolves a coupon code to its discount rate.
func CouponDiscountRate(code string) (float64, error) {
	if strings.EqualFold(strings.TrimSpace(code), CouponCode) {
		return couponRate, nil
	}
	return 0, ErrInvalidCoupon
}

// ShippingCost returns the shipping fee for a pre-discount subtotal.
func ShippingCost(subtotal float64) float64 {
	if subtotal > FreeShippingThreshold {
		return 0
	}
	return FlatShippingFee
}

// Totals is the order's price breakdown, computed once at submission and
// frozen into the order.
type Totals struct {
	Subtotal     float64 `json:"subtotal"`
	Discount     float64 `json:"discount"`
	ShippingCost float64 `json:"shippingCost"`
	Total        float64 `json:"total"`
}

// ComputeTotals derives the breakdown: discount comes off the subtotal,
// shipping is added after, and the shipping tier is decided before the
// discount applies.
func ComputeTotals(subtotal, discountRate float64) Totals {
	discount := subtotal * discountRate
	shipping := ShippingCost(subtotal)
	return Totals{
		Subtotal:     subtotal,
		Discount:     discount,
		ShippingCost: shipping,
		Total:        subtotal - discount + shipping,
	}
}
