package state

import (
	"context"
	"log"
	"sync"

	"gorm.io/gorm"

	"github.com/yenrise/milcolores-api/cart"
	"github.com/yenrise/milcolores-api/catalog"
	"github.com/yenrise/milcolores-api/config"
	"github.com/yenrise/milcolores-api/models"
	"github.com/yenrise/milcolores-api/storage"
)

// App owns every piece of mutable storefront state: the loaded catalog,
// the cart and the checkout context. Controllers go through its methods
// only, so each mutation leaves storage and derived totals consistent
// before a response is written.
type App struct {
	cfg config.Config
	db  *gorm.DB
	kv  storage.KV

	mu      sync.RWMutex
	catalog []models.Product
	city    string
	name    string

	cart *cart.Store
}

// New builds the App and rehydrates cart, city and name from storage.
func New(cfg config.Config, db *gorm.DB, kv storage.KV) *App {
	a := &App{
		cfg:  cfg,
		db:   db,
		kv:   kv,
		cart: cart.NewStore(kv),
	}
	if v, ok, err := kv.Get(storage.KeyCity); err == nil && ok {
		a.city = v
	}
	if v, ok, err := kv.Get(storage.KeyName); err == nil && ok {
		a.name = v
	}
	return a
}

func (a *App) Config() config.Config { return a.cfg }
func (a *App) DB() *gorm.DB          { return a.db }

// ───────────────── Catalog ─────────────────

// Catalog returns a copy of the loaded product list.
func (a *App) Catalog() []models.Product {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]models.Product(nil), a.catalog...)
}

// SetCatalog swaps in a freshly loaded product list.
func (a *App) SetCatalog(products []models.Product) {
	a.mu.Lock()
	a.catalog = products
	a.mu.Unlock()
}

// ReloadCatalog fetches the catalog again and swaps it in, returning the
// product count. A failed load keeps the current catalog.
func (a *App) ReloadCatalog(ctx context.Context) (int, error) {
	products, err := catalog.Load(ctx, a.cfg.CatalogURL)
	if err != nil {
		return 0, err
	}
	a.SetCatalog(products)
	return len(products), nil
}

func (a *App) findProduct(id uint) (models.Product, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, p := range a.catalog {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// FilterProducts applies the combined category + search filter.
func (a *App) FilterProducts(category, search string) []models.Product {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return catalog.Filter(a.catalog, category, search)
}

// CategoryCounts computes the menu counts over the full catalog.
func (a *App) CategoryCounts() []catalog.CategoryCount {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return catalog.CategoryCounts(a.catalog)
}

// ───────────────── Cart ─────────────────

// AddToCart merges one unit of the product into the cart. An id missing
// from the catalog is a silent no-op; the storefront only ever offers
// ids that exist. Reports whether anything was added.
func (a *App) AddToCart(id uint) bool {
	p, ok := a.findProduct(id)
	if !ok {
		log.Printf("add to cart ignored, product %d not in catalog", id)
		return false
	}
	a.cart.Add(p)
	return true
}

// AddKit merges each kit product found in the catalog, in list order.
// Partial application is fine; the count of added products is returned
// along with whether the kit name is known at all.
func (a *App) AddKit(kitName string) (int, bool) {
	ids, ok := config.Kits[kitName]
	if !ok {
		return 0, false
	}
	found := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := a.findProduct(id); ok {
			found = append(found, p)
		}
	}
	a.cart.AddAll(found)
	return len(found), true
}

func (a *App) UpdateQuantity(id uint, delta int) { a.cart.UpdateQuantity(id, delta) }
func (a *App) RemoveFromCart(id uint)            { a.cart.Remove(id) }
func (a *App) ClearCart()                        { a.cart.Clear() }

func (a *App) CartItems() []models.CartLineItem { return a.cart.Items() }
func (a *App) CartCount() int                   { return a.cart.Count() }

// ───────────────── Checkout context ─────────────────

// SetCity records the shipping destination and persists it.
func (a *App) SetCity(city string) {
	a.mu.Lock()
	a.city = city
	a.mu.Unlock()
	if err := a.kv.Set(storage.KeyCity, city); err != nil {
		log.Printf("city write failed: %v", err)
	}
}

// SetClientName records the client display name and persists it.
func (a *App) SetClientName(name string) {
	a.mu.Lock()
	a.name = name
	a.mu.Unlock()
	if err := a.kv.Set(storage.KeyName, name); err != nil {
		log.Printf("client name write failed: %v", err)
	}
}

// CheckoutContext returns the selected city and client name.
func (a *App) CheckoutContext() (city, name string) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.city, a.name
}

// Totals recomputes the derived money state and checkout eligibility for
// the current cart and city.
func (a *App) Totals() (cart.Totals, cart.CheckoutStatus) {
	items := a.cart.Items()
	city, _ := a.CheckoutContext()
	return cart.Calculate(items, city), cart.Eligibility(items, city)
}
