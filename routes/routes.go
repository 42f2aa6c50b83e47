package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yenrise/milcolores-api/state"
)

// SetupRoutes is the single entry‐point that wires up the storefront,
// cart, checkout and admin route groups.
func SetupRoutes(r *gin.Engine, app *state.App) {
	// 1️⃣ Public storefront (grid, categories, banners, share, countdown)
	SetupStoreRoutes(r, app)

	// 2️⃣ Cart and checkout
	SetupCartRoutes(r, app)
	SetupCheckoutRoutes(r, app)

	// 3️⃣ Admin surface (API‐Key‐protected)
	SetupAdminRoutes(r, app)
}
