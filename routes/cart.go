package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/yenrise/milcolores-api/controllers/cart"
	"github.com/yenrise/milcolores-api/state"
)

// SetupCartRoutes registers the cart mutation endpoints.
func SetupCartRoutes(r *gin.Engine, app *state.App) {
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", cartControllers.GetCart(app))                       // GET /cart
		cartGroup.POST("", cartControllers.AddCartItem(app))                  // POST /cart
		cartGroup.POST("/kit/:name", cartControllers.AddKit(app))             // POST /cart/kit/:name
		cartGroup.PATCH("/:product_id", cartControllers.UpdateCartItem(app))  // PATCH /cart/:product_id
		cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(app)) // DELETE /cart/:product_id
		cartGroup.DELETE("", cartControllers.ClearCart(app))                  // DELETE /cart
	}
}
