package storeControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yenrise/milcolores-api/state"
)

// GET /share
//
// Returns the Web Share payload for the storefront. Clients without the
// native share capability copy the URL to the clipboard instead; either
// way nothing comes back to the server.
func ShareStore(app *state.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"title": "Mil Colores - Papelería",
			"text":  "Mira los productos geniales que encontré en Mil Colores 🎨",
			"url":   app.Config().StoreURL,
		})
	}
}
