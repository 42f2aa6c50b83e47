package cart

import (
	"math"
	"testing"

	"github.com/yenrise/milcolores-api/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculate(t *testing.T) {
	items := []models.CartLineItem{
		{ProductID: 1, Price: 2.50, Quantity: 2},
		{ProductID: 2, Price: 1.00, Quantity: 3},
	}

	t.Run("with Quito shipping", func(t *testing.T) {
		totals := Calculate(items, "Quito")
		if !almostEqual(totals.Subtotal, 8.00) {
			t.Fatalf("expected subtotal 8.00, got %.2f", totals.Subtotal)
		}
		if !almostEqual(totals.Shipping, 2.00) {
			t.Fatalf("expected shipping 2.00, got %.2f", totals.Shipping)
		}
		if !almostEqual(totals.Total, 10.00) {
			t.Fatalf("expected total 10.00, got %.2f", totals.Total)
		}
	})

	t.Run("no city -> no shipping", func(t *testing.T) {
		totals := Calculate(items, "")
		if !almostEqual(totals.Shipping, 0) || !almostEqual(totals.Total, 8.00) {
			t.Fatalf("expected shipping 0 and total 8.00, got %+v", totals)
		}
	})

	t.Run("city outside the table -> no fee", func(t *testing.T) {
		totals := Calculate(items, "Narnia")
		if !almostEqual(totals.Shipping, 0) {
			t.Fatalf("expected shipping 0, got %.2f", totals.Shipping)
		}
	})

	t.Run("empty cart", func(t *testing.T) {
		totals := Calculate(nil, "Quito")
		if !almostEqual(totals.Subtotal, 0) || !almostEqual(totals.Total, 2.00) {
			t.Fatalf("unexpected totals: %+v", totals)
		}
	})
}

func TestEligibility(t *testing.T) {
	items := []models.CartLineItem{{ProductID: 1, Price: 1.00, Quantity: 1}}

	t.Run("empty cart with city -> blocked, cart_empty", func(t *testing.T) {
		status := Eligibility(nil, "Quito")
		if status.Enabled || status.Reason != ReasonCartEmpty {
			t.Fatalf("expected cart_empty block, got %+v", status)
		}
	})

	t.Run("items without city -> blocked, select_city", func(t *testing.T) {
		status := Eligibility(items, "")
		if status.Enabled || status.Reason != ReasonSelectCity {
			t.Fatalf("expected select_city block, got %+v", status)
		}
	})

	t.Run("items and city -> enabled", func(t *testing.T) {
		status := Eligibility(items, "Cuenca")
		if !status.Enabled || status.Reason != "" {
			t.Fatalf("expected enabled, got %+v", status)
		}
	})

	t.Run("empty cart wins over missing city", func(t *testing.T) {
		status := Eligibility(nil, "")
		if status.Reason != ReasonCartEmpty {
			t.Fatalf("expected cart_empty first, got %+v", status)
		}
	})
}
