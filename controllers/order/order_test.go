package orderControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yenrise/milcolores-api/config"
	"github.com/yenrise/milcolores-api/models"
	"github.com/yenrise/milcolores-api/state"
	"github.com/yenrise/milcolores-api/storage"
)

func newTestRouter() (*gin.Engine, *state.App) {
	gin.SetMode(gin.TestMode)

	app := state.New(config.Config{WhatsAppPhone: "593998469884"}, nil, storage.NewMemoryStore())
	app.SetCatalog([]models.Product{
		{ID: 1, Name: "Cuaderno", Price: 2.50, Category: "Escolares"},
	})

	r := gin.New()
	r.GET("/checkout/summary", GetCheckoutSummary(app))
	r.PUT("/checkout/city", SetCity(app))
	r.PUT("/checkout/name", SetClientName(app))
	r.POST("/checkout", CheckoutHandler(app))
	return r, app
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response JSON: %v\n%s", err, w.Body.String())
		}
	}
	return w, resp
}

// newTestRouterWithDB backs the app with a throwaway sqlite database so
// placed orders can actually be persisted and read back.
func newTestRouterWithDB(t *testing.T) (*gin.Engine, *state.App) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "orders.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	app := state.New(config.Config{WhatsAppPhone: "593998469884"}, db, storage.NewMemoryStore())
	app.SetCatalog([]models.Product{
		{ID: 1, Name: "Cuaderno", Price: 2.50, Category: "Escolares"},
	})

	r := gin.New()
	r.POST("/checkout", CheckoutHandler(app))
	return r, app
}

func TestCheckoutBlockedOnEmptyCart(t *testing.T) {
	r, app := newTestRouter()
	app.SetCity("Quito")

	w, resp := do(t, r, http.MethodPost, "/checkout", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	if resp["reason"] != "cart_empty" {
		t.Fatalf("expected cart_empty, got %v", resp["reason"])
	}
}

func TestCheckoutBlockedWithoutCity(t *testing.T) {
	r, app := newTestRouter()
	app.AddToCart(1)

	w, resp := do(t, r, http.MethodPost, "/checkout", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	if resp["reason"] != "select_city" {
		t.Fatalf("expected select_city, got %v", resp["reason"])
	}
}

func TestCheckoutPlacesOrder(t *testing.T) {
	r, app := newTestRouterWithDB(t)
	app.AddToCart(1)
	app.SetCity("Quito")
	app.SetClientName("Ana")

	w, resp := do(t, r, http.MethodPost, "/checkout", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	orderRef, _ := resp["order_ref"].(string)
	if orderRef == "" {
		t.Fatalf("expected an order_ref, got %v", resp)
	}
	waURL, _ := resp["whatsapp_url"].(string)
	if !strings.HasPrefix(waURL, "https://wa.me/593998469884?text=") {
		t.Fatalf("unexpected whatsapp_url: %s", waURL)
	}

	var saved models.Order
	if err := app.DB().Preload("Items").First(&saved, "order_ref = ?", orderRef).Error; err != nil {
		t.Fatalf("order not persisted: %v", err)
	}
	if saved.ClientName != "Ana" || saved.City != "Quito" {
		t.Fatalf("unexpected order context: %+v", saved)
	}
	if saved.Subtotal != 2.50 || saved.ShippingCost != 2.00 || saved.TotalAmount != 4.50 {
		t.Fatalf("unexpected order totals: %+v", saved)
	}
	if len(saved.Items) != 1 || saved.Items[0].ProductID != 1 || saved.Items[0].Quantity != 1 {
		t.Fatalf("unexpected order items: %+v", saved.Items)
	}

	// the client still has to send the message, so the cart stays as-is
	if app.CartCount() != 1 {
		t.Fatalf("expected cart untouched, got count %d", app.CartCount())
	}
}

func TestSetCityRecomputesTotals(t *testing.T) {
	r, app := newTestRouter()
	app.AddToCart(1)

	_, resp := do(t, r, http.MethodPut, "/checkout/city", `{"city": "Guayaquil"}`)

	totals, ok := resp["totals"].(map[string]any)
	if !ok {
		t.Fatalf("missing totals in %v", resp)
	}
	if totals["shipping"] != 4.00 || totals["total"] != 6.50 {
		t.Fatalf("unexpected totals: %v", totals)
	}
	checkout, ok := resp["checkout"].(map[string]any)
	if !ok || checkout["enabled"] != true {
		t.Fatalf("expected enabled checkout, got %v", resp["checkout"])
	}
}

func TestSummaryReflectsContext(t *testing.T) {
	r, app := newTestRouter()
	app.AddToCart(1)
	app.SetCity("Quito")
	app.SetClientName("Ana")

	_, resp := do(t, r, http.MethodGet, "/checkout/summary", "")

	if resp["city"] != "Quito" || resp["name"] != "Ana" {
		t.Fatalf("unexpected context: %v", resp)
	}
	if resp["count"] != float64(1) {
		t.Fatalf("expected count 1, got %v", resp["count"])
	}
}
