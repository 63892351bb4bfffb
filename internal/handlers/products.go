package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/catalog"
)

func parseFilter(c *gin.Context) catalog.Filter {
	return catalog.Filter{
		Category: strings.TrimSpace(c.Query("category")),
		Search:   strings.TrimSpace(c.Query("search")),
		Brand:    strings.TrimSpace(c.Query("brand")),
		Color:    strings.TrimSpace(c.Query("color")),
		Size:     strings.TrimSpace(c.Query("size")),
		Sort:     catalog.SortOrder(strings.TrimSpace(c.Query("sort"))),
	}
}

// GetProducts lists the catalog through the pure filter/sort functions.
// Category and search can both arrive here from direct calls; when the
// client drives navigation through the session the two are mutually
// exclusive already.
func GetProducts(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products"
		defer handlePanic(c, route)

		filter := parseFilter(c)
		log.Printf("[%s] hit category=%s search=%s sort=%s", route, filter.Category, filter.Search, filter.Sort)

		products := cat.Search(filter)

		log.Printf("[%s] returning %d products", route, len(products))
		c.JSON(http.StatusOK, products)
	}
}

func GetProduct(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products/:id"
		defer handlePanic(c, route)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid product id")
			return
		}

		product, ok := cat.ByID(id)
		if !ok {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

func GetCategories(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /categories"
		defer handlePanic(c, route)

		c.JSON(http.StatusOK, cat.Categories())
	}
}

func GetBrands(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /brands"
		defer handlePanic(c, route)

		c.JSON(http.StatusOK, cat.Brands())
	}
}
