package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/currency"
)

type setCurrencyRequest struct {
	Currency string `json:"currency" binding:"required"`
}

func GetCurrency() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /currency"
		defer handlePanic(c, route)

		sess := mustSession(c, route)
		if sess == nil {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"currency": sess.DisplayCurrency(),
			"rate":     currency.RateMXNPerUSD,
		})
	}
}

func SetCurrency() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /currency"
		defer handlePanic(c, route)

		sess := mustSession(c, route)
		if sess == nil {
			return
		}

		var req setCurrencyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		code, err := currency.Parse(req.Currency)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "unsupported currency")
			return
		}

		sess.SetDisplayCurrency(code)
		c.JSON(http.StatusOK, gin.H{"currency": code})
	}
}
