package cartControllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	notifyControllers "github.com/yenrise/milcolores-api/controllers/notify"
	"github.com/yenrise/milcolores-api/state"
)

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

type UpdateQuantityInput struct {
	Delta int `json:"delta" binding:"required"`
}

// cartResponse is the full cart view sent back after every read or
// mutation, so the client can re-render panel, badge and totals at once.
func cartResponse(app *state.App) gin.H {
	totals, status := app.Totals()
	return gin.H{
		"items":    app.CartItems(),
		"count":    app.CartCount(),
		"totals":   totals,
		"checkout": status,
	}
}

// GET /cart
func GetCart(app *state.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartResponse(app))
	}
}

// POST /cart
func AddCartItem(app *state.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// An id that is not in the catalog is dropped silently; the
		// storefront never offers one.
		added := app.AddToCart(input.ProductID)

		resp := cartResponse(app)
		resp["added"] = added
		resp["open_cart"] = true
		c.JSON(http.StatusOK, resp)
	}
}

// POST /cart/kit/:name
func AddKit(app *state.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")

		added, ok := app.AddKit(name)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Kit not found"})
			return
		}

		notifyControllers.Broadcast(notifyControllers.Event{
			Type:    "kit_added",
			Message: fmt.Sprintf("¡Kit %s añadido con éxito! 🛍️", name),
		})

		resp := cartResponse(app)
		resp["added"] = added
		resp["open_cart"] = true
		c.JSON(http.StatusOK, resp)
	}
}

// PATCH /cart/:product_id
func UpdateCartItem(app *state.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := parseProductID(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		app.UpdateQuantity(productID, input.Delta)
		c.JSON(http.StatusOK, cartResponse(app))
	}
}

// DELETE /cart/:product_id
func DeleteCartItem(app *state.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := parseProductID(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		app.RemoveFromCart(productID)
		c.JSON(http.StatusOK, cartResponse(app))
	}
}

// DELETE /cart
func ClearCart(app *state.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		app.ClearCart()
		c.JSON(http.StatusOK, cartResponse(app))
	}
}

func parseProductID(param string) (uint, error) {
	id, err := strconv.ParseUint(param, 10, 64)
	return uint(id), err
}
