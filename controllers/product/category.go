package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yenrise/milcolores-api/state"
)

// GET /categories
//
// Serves the dropdown menu: every category plus "Todas", each with the
// count of products it holds. Counts ignore the search box; they are a
// display aid, not a filter.
func GetCategories(app *state.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"categories": app.CategoryCounts()})
	}
}
