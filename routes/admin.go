package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/yenrise/milcolores-api/controllers/admin"
	orderControllers "github.com/yenrise/milcolores-api/controllers/order"
	"github.com/yenrise/milcolores-api/middleware"
	"github.com/yenrise/milcolores-api/state"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires API‐Key middleware.
func SetupAdminRoutes(r *gin.Engine, app *state.App) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey(app.Config().AdminAPIKey))
	{
		// ─────────── Catalog Management ───────────
		adminGroup.POST("/catalog/reload", adminController.ReloadCatalog(app))

		// ─────────── Order History ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(app))
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(app))
		}

		// ─────────── Banner Management ───────────
		bannerAdmin := adminGroup.Group("/banners")
		{
			bannerAdmin.POST("/upload", adminController.UploadBanner(app))
			bannerAdmin.DELETE("/:id", adminController.DeleteBanner(app))
		}
	}
}
