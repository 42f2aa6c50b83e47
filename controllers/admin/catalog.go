package adminController

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yenrise/milcolores-api/catalog"
	"github.com/yenrise/milcolores-api/state"
)

// POST /admin/catalog/reload
//
// Re-fetches the catalog resource and swaps in the fresh product list.
// A failed load keeps the current catalog and reports what went wrong;
// parse failures carry the fault offset and excerpt for diagnosis.
func ReloadCatalog(app *state.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := app.ReloadCatalog(c.Request.Context())
		if err != nil {
			log.Printf("catalog reload failed: %v", err)

			if perr, ok := err.(*catalog.ParseError); ok {
				c.JSON(http.StatusUnprocessableEntity, gin.H{
					"error":   "Catalog JSON is malformed",
					"offset":  perr.Offset,
					"excerpt": perr.Excerpt,
				})
				return
			}
			if lerr, ok := err.(*catalog.LoadError); ok {
				c.JSON(http.StatusBadGateway, gin.H{
					"error":  "Catalog fetch failed",
					"status": lerr.Status,
				})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Catalog reloaded", "products": count})
	}
}
