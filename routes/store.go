package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/yenrise/milcolores-api/controllers/admin"
	notifyControllers "github.com/yenrise/milcolores-api/controllers/notify"
	productcontroller "github.com/yenrise/milcolores-api/controllers/product"
	storeControllers "github.com/yenrise/milcolores-api/controllers/store"
	"github.com/yenrise/milcolores-api/state"
)

// SetupStoreRoutes registers the public browsing endpoints.
func SetupStoreRoutes(r *gin.Engine, app *state.App) {
	// ──────────────── Product Grid ────────────────
	r.GET("/products", productcontroller.GetProducts(app))        // GET /products?category=&search=
	r.GET("/products/:id", productcontroller.GetProductByID(app)) // GET /products/:id
	r.GET("/categories", productcontroller.GetCategories(app))    // GET /categories

	// ──────────────── Landing ────────────────
	r.GET("/banners", adminController.GetBanners(app))           // GET /banners
	r.GET("/share", storeControllers.ShareStore(app))            // GET /share
	r.GET("/promo/countdown", storeControllers.PromoCountdown()) // GET /promo/countdown

	// ──────────────── Toast Notifications ────────────────
	r.GET("/ws/notifications", notifyControllers.Handler) // GET /ws/notifications
}
