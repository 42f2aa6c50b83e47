package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/yenrise/milcolores-api/models"
	"github.com/yenrise/milcolores-api/state"
)

// GET /admin/orders/export-excel
func ExportOrdersToExcel(app *state.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := app.DB().
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"OrderRef", "ClientName", "City", "Items",
			"Subtotal", "ShippingCost", "TotalAmount", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, o := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.OrderRef)
			row.AddCell().SetValue(o.ClientName)
			row.AddCell().SetValue(o.City)

			itemCount := 0
			for _, item := range o.Items {
				itemCount += item.Quantity
			}
			row.AddCell().SetValue(itemCount)

			row.AddCell().SetValue(o.Subtotal)
			row.AddCell().SetValue(o.ShippingCost)
			row.AddCell().SetValue(o.TotalAmount)
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		// Write file to response
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
