package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yenrise/milcolores-api/config"
	"github.com/yenrise/milcolores-api/state"
)

// GET /products
//
// Serves the product grid: combined category + search filter over the
// in-memory catalog, catalog order preserved.
func GetProducts(app *state.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.DefaultQuery("category", config.CategoryAll)
		search := c.Query("search")

		products := app.FilterProducts(category, search)
		c.JSON(http.StatusOK, gin.H{
			"products": products,
			"count":    len(products),
		})
	}
}

// GET /products/:id
func GetProductByID(app *state.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		for _, p := range app.Catalog() {
			if p.ID == uint(id) {
				c.JSON(http.StatusOK, p)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	}
}
