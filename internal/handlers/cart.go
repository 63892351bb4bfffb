package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/catalog"
	"storefront/internal/checkout"
	"storefront/internal/currency"
	"storefront/internal/session"
)

type addCartItemRequest struct {
	ProductID int `json:"productId" binding:"required"`
	Quantity  int `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type applyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

// cartView assembles the cart summary shoppers see on the cart page:
// lines, count, price breakdown and display strings in the session's
// currency. Shipping shown here is a preview; the order freezes its own.
func cartView(sess *session.Session) gin.H {
	items := sess.CartItems()
	subtotal := sess.Subtotal()
	code, rate := sess.Coupon()
	totals := checkout.ComputeTotals(subtotal, rate)
	display := sess.DisplayCurrency()

	return gin.H{
		"items":    items,
		"count":    sess.CartCount(),
		"coupon":   code,
		"subtotal": totals.Subtotal,
		"discount": totals.Discount,
		"shipping": totals.ShippingCost,
		"total":    totals.Total,
		"display": gin.H{
			"currency": display,
			"subtotal": currency.Format(totals.Subtotal, display),
			"shipping": currency.Format(totals.ShippingCost, display),
			"total":    currency.Format(totals.Total, display),
		},
	}
}

func GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /cart"
		defer handlePanic(c, route)

		sess := mustSession(c, route)
		if sess == nil {
			return
		}
		c.JSON(http.StatusOK, cartView(sess))
	}
}

// AddCartItem merges the product into the cart. Stock is advisory only;
// a request beyond stock is accepted.
func AddCartItem(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /cart/items"
		defer handlePanic(c, route)

		sess := mustSession(c, route)
		if sess == nil {
			return
		}

		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}
		if req.Quantity < 1 {
			respondWithError(c, http.StatusBadRequest, route, "quantity must be greater than zero")
			return
		}

		product, ok := cat.ByID(req.ProductID)
		if !ok {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}

		sess.AddToCart(product, req.Quantity)
		log.Printf("[%s] product %d x%d added", route, req.ProductID, req.Quantity)
		c.JSON(http.StatusOK, cartView(sess))
	}
}

// UpdateCartItem sets a line's quantity. Values below 1 clamp to 1; a line
// never holds a non-positive quantity.
func UpdateCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /cart/items/:productId"
		defer handlePanic(c, route)

		sess := mustSession(c, route)
		if sess == nil {
			return
		}

		productID, err := strconv.Atoi(c.Param("productId"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid product id")
			return
		}

		var req updateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		sess.UpdateQuantity(productID, req.Quantity)
		c.JSON(http.StatusOK, cartView(sess))
	}
}

func RemoveCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /cart/items/:productId"
		defer handlePanic(c, route)

		sess := mustSession(c, route)
		if sess == nil {
			return
		}

		productID, err := strconv.Atoi(c.Param("productId"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid product id")
			return
		}

		sess.RemoveFromCart(productID)
		c.JSON(http.StatusOK, cartView(sess))
	}
}

func ClearCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /cart"
		defer handlePanic(c, route)

		sess := mustSession(c, route)
		if sess == nil {
			return
		}

		sess.ClearCart()
		c.JSON(http.StatusOK, cartView(sess))
	}
}

// ApplyCoupon validates the code and activates its discount. Re-applying
// replaces the active discount; it never stacks.
func ApplyCoupon() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /cart/coupon"
		defer handlePanic(c, route)

		sess := mustSession(c, route)
		if sess == nil {
			return
		}

		var req applyCouponRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		rate, err := checkout.CouponDiscountRate(req.Code)
		if err != nil {
			if errors.Is(err, checkout.ErrInvalidCoupon) {
				respondWithError(c, http.StatusUnprocessableEntity, route, err.Error())
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "internal server error")
			return
		}

		sess.SetCoupon(checkout.CouponCode, rate)
		log.Printf("[%s] coupon applied", route)
		c.JSON(http.StatusOK, cartView(sess))
	}
}
