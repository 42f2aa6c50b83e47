package cart

import (
	"github.com/yenrise/milcolores-api/config"
	"github.com/yenrise/milcolores-api/models"
)

// Totals is the derived money state of the cart for a destination city.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// Reasons why checkout can be blocked.
const (
	ReasonCartEmpty  = "cart_empty"
	ReasonSelectCity = "select_city"
)

// CheckoutStatus mirrors the state of the checkout button: enabled, or
// blocked with a machine reason and the label shown to the client.
type CheckoutStatus struct {
	Enabled bool   `json:"enabled"`
	Reason  string `json:"reason,omitempty"`
	Label   string `json:"label,omitempty"`
}

// Calculate derives subtotal, shipping and grand total. Shipping applies
// only when a city is selected and known to the rate table.
func Calculate(items []models.CartLineItem, city string) Totals {
	var t Totals
	for _, item := range items {
		t.Subtotal += item.LineTotal()
	}
	if city != "" {
		if rate, ok := config.ShippingRate(city); ok {
			t.Shipping = rate
		}
	}
	t.Total = t.Subtotal + t.Shipping
	return t
}

// Eligibility decides whether checkout may proceed. An empty cart and a
// missing city block it for distinct user-facing reasons.
func Eligibility(items []models.CartLineItem, city string) CheckoutStatus {
	switch {
	case len(items) == 0:
		return CheckoutStatus{Reason: ReasonCartEmpty, Label: "Carrito Vacío"}
	case city == "":
		return CheckoutStatus{Reason: ReasonSelectCity, Label: "Selecciona Ciudad"}
	}
	return CheckoutStatus{Enabled: true}
}
