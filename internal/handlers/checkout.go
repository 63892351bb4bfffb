package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"storefront/internal/checkout"
)

type validateCheckoutRequest struct {
	Form    checkout.Form `json:"form"`
	Touched []string      `json:"touched"`
}

type submitCheckoutRequest struct {
	Form checkout.Form `json:"form"`
}

// ValidateCheckout re-runs field validation on every input change. Only
// errors for touched fields come back, so the shopper is not shouted at
// about fields they have not reached yet.
func ValidateCheckout() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /checkout/validate"
		defer handlePanic(c, route)

		sess := mustSession(c, route)
		if sess == nil {
			return
		}

		var req validateCheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		errs := checkout.Validate(req.Form, time.Now()).Filter(req.Touched)
		c.JSON(http.StatusOK, gin.H{
			"errors": errs,
			"valid":  len(errs) == 0,
		})
	}
}

// SubmitCheckout is the only producer of orders. Submission forces every
// field touched, so the full error set surfaces at once; acceptance
// requires zero errors and a non-empty cart. On success the cart snapshot
// is frozen into the order, the cart is cleared and the shopper lands on
// the confirmation page.
func SubmitCheckout() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /checkout"
		defer handlePanic(c, route)

		sess := mustSession(c, route)
		if sess == nil {
			return
		}

		var req submitCheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		errs := checkout.Validate(req.Form, time.Now())
		if len(errs) > 0 {
			log.Printf("[%s] rejected with %d field errors", route, len(errs))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
			return
		}

		// The cart can have been cleared out-of-band between the cart page
		// and this submit.
		items := sess.CartItems()
		if len(items) == 0 {
			respondWithError(c, http.StatusConflict, route, "Tu carrito está vacío")
			return
		}

		_, rate := sess.Coupon()
		totals := checkout.ComputeTotals(sess.Subtotal(), rate)
		order := checkout.AssembleOrder(items, req.Form, totals, time.Now())

		sess.ClearCart()
		location := sess.PlaceOrder(order)

		log.Printf("[%s] order %s created, total %.2f", route, order.OrderID, order.Total)
		c.JSON(http.StatusCreated, gin.H{
			"order":       order,
			"location":    location,
			"resetScroll": true,
		})
	}
}
