package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/yenrise/milcolores-api/controllers/order"
	"github.com/yenrise/milcolores-api/state"
)

// SetupCheckoutRoutes registers the checkout context and handoff
// endpoints.
func SetupCheckoutRoutes(r *gin.Engine, app *state.App) {
	checkoutGroup := r.Group("/checkout")
	{
		checkoutGroup.GET("/summary", orderControllers.GetCheckoutSummary(app)) // GET /checkout/summary
		checkoutGroup.PUT("/city", orderControllers.SetCity(app))               // PUT /checkout/city
		checkoutGroup.PUT("/name", orderControllers.SetClientName(app))         // PUT /checkout/name
		checkoutGroup.POST("", orderControllers.CheckoutHandler(app))           // POST /checkout
	}
}
