package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func GetFavorites() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /favorites"
		defer handlePanic(c, route)

		sess := mustSession(c, route)
		if sess == nil {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"ids":   sess.FavoriteIDs(),
			"count": sess.FavoritesCount(),
		})
	}
}

// ToggleFavorite flips membership and reports the new state.
func ToggleFavorite() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /favorites/:productId"
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

		favorite := sess.ToggleFavorite(productID)
		c.JSON(http.StatusOK, gin.H{
			"productId": productID,
			"favorite":  favorite,
			"count":     sess.FavoritesCount(),
		})
	}
}
