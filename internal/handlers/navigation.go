package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/catalog"
	"storefront/internal/models"
	"storefront/internal/session"
)

type gotoPageRequest struct {
	Page string `json:"page" binding:"required"`
}

type selectProductRequest struct {
	ProductID int `json:"productId" binding:"required"`
}

type selectCategoryRequest struct {
	Category string `json:"category" binding:"required"`
}

type searchRequest struct {
	Query string `json:"query" binding:"required"`
}

// locationView wraps a navigation result. Every transition resets scroll.
// On the category page the product list is recomputed as a pure filter
// over the catalog from whichever of category/search is active, plus any
// facet parameters the request carries.
func locationView(c *gin.Context, cat *catalog.Catalog, loc session.Location) gin.H {
	out := gin.H{
		"location":    loc,
		"resetScroll": true,
	}
	if loc.Page == models.PageCategory {
		filter := parseFilter(c)
		filter.Category = loc.Category
		filter.Search = loc.Query
		out["products"] = cat.Search(filter)
	}
	return out
}

// GetNavigation reports the current page and the data it renders with.
func GetNavigation(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /navigation"
		defer handlePanic(c, route)

		sess := mustSession(c, route)
		if sess == nil {
			return
		}
		c.JSON(http.StatusOK, locationView(c, cat, sess.Location()))
	}
}

// GoToPage moves to a named page. Product and confirmation fall back to
// home when their payload is missing; that is a recovery path, not an
// error.
func GoToPage(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /navigation/goto"
		defer handlePanic(c, route)

		sess := mustSession(c, route)
		if sess == nil {
			return
		}

		var req gotoPageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		page := models.Page(strings.TrimSpace(req.Page))
		if !models.ValidPage(page) {
			respondWithError(c, http.StatusBadRequest, route, "unknown page")
			return
		}

		loc := sess.Navigate(page)
		if loc.Page != page {
			log.Printf("[%s] %s missing its selection, redirected home", route, page)
		}
		c.JSON(http.StatusOK, locationView(c, cat, loc))
	}
}

// SelectProduct records the shopper's product choice and opens its page.
func SelectProduct(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /navigation/select-product"
		defer handlePanic(c, route)

		sess := mustSession(c, route)
		if sess == nil {
			return
		}

		var req selectProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		product, ok := cat.ByID(req.ProductID)
		if !ok {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}

		c.JSON(http.StatusOK, locationView(c, cat, sess.SelectProduct(product)))
	}
}

// SelectCategory activates a category filter; any live search is dropped.
func SelectCategory(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /navigation/select-category"
		defer handlePanic(c, route)

		sess := mustSession(c, route)
		if sess == nil {
			return
		}

		var req selectCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		c.JSON(http.StatusOK, locationView(c, cat, sess.SelectCategory(strings.TrimSpace(req.Category))))
	}
}

// SearchProducts activates a free-text search; any category filter resets.
func SearchProducts(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /navigation/search"
		defer handlePanic(c, route)

		sess := mustSession(c, route)
		if sess == nil {
			return
		}

		var req searchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		c.JSON(http.StatusOK, locationView(c, cat, sess.SearchCatalog(strings.TrimSpace(req.Query))))
	}
}
