package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yenrise/milcolores-api/checkout"
	notifyControllers "github.com/yenrise/milcolores-api/controllers/notify"
	"github.com/yenrise/milcolores-api/models"
	"github.com/yenrise/milcolores-api/state"
)

// -------- Request Structs --------

type SetCityRequest struct {
	City string `json:"city"`
}

type SetNameRequest struct {
	Name string `json:"name"`
}

// -------- Helpers --------

// Generate unique order reference
func generateOrderRef() string {
	// Example: 20250908130500-<uuid4>
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Core Logic --------

// PlaceOrder builds the WhatsApp handoff for the current cart and records
// it as an order. It mirrors the totals eligibility check exactly: a
// blocked checkout is a no-op, so the message can never carry an
// undefined shipping cost. The cart is left untouched; the client still
// has to send the message.
func PlaceOrder(app *state.App) (*models.Order, error) {
	totals, status := app.Totals()
	if !status.Enabled {
		return nil, errors.New(status.Label)
	}

	items := app.CartItems()
	city, name := app.CheckoutContext()

	message := checkout.BuildMessage(items, totals, name, city)
	waURL := checkout.WhatsAppURL(app.Config().WhatsAppPhone, message)

	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	clientName := name
	if clientName == "" {
		clientName = checkout.FallbackClientName
	}

	order := models.Order{
		OrderRef:     generateOrderRef(),
		ClientName:   clientName,
		City:         city,
		Subtotal:     totals.Subtotal,
		ShippingCost: totals.Shipping,
		TotalAmount:  totals.Total,
		WhatsAppURL:  waURL,
		Items:        orderItems,
		CreatedAt:    time.Now(),
	}

	if err := app.DB().Create(&order).Error; err != nil {
		return nil, err
	}

	notifyControllers.Broadcast(notifyControllers.Event{
		Type:    "order_placed",
		Message: "Pedido " + order.OrderRef + " listo para WhatsApp 🛍️",
	})

	return &order, nil
}

// -------- Handlers --------

// POST /checkout
func CheckoutHandler(app *state.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, status := app.Totals()
		if !status.Enabled {
			c.JSON(http.StatusConflict, gin.H{"error": status.Label, "reason": status.Reason})
			return
		}

		order, err := PlaceOrder(app)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"order_ref":    order.OrderRef,
			"whatsapp_url": order.WhatsAppURL,
		})
	}
}

// GET /checkout/summary
func GetCheckoutSummary(app *state.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		totals, status := app.Totals()
		city, name := app.CheckoutContext()
		c.JSON(http.StatusOK, gin.H{
			"city":     city,
			"name":     name,
			"count":    app.CartCount(),
			"totals":   totals,
			"checkout": status,
		})
	}
}

// PUT /checkout/city
func SetCity(app *state.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetCityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		app.SetCity(req.City)
		totals, status := app.Totals()
		c.JSON(http.StatusOK, gin.H{"city": req.City, "totals": totals, "checkout": status})
	}
}

// PUT /checkout/name
func SetClientName(app *state.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetNameRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		app.SetClientName(req.Name)
		c.JSON(http.StatusOK, gin.H{"name": req.Name})
	}
}

// GET /admin/orders
func GetAllOrdersHandler(app *state.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := app.DB().
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
