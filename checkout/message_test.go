package checkout

import (
	"net/url"
	"strings"
	"testing"

	"github.com/yenrise/milcolores-api/cart"
	"github.com/yenrise/milcolores-api/models"
)

var orderItems = []models.CartLineItem{
	{ProductID: 1, Name: "Cuaderno", Price: 2.50, Quantity: 2},
	{ProductID: 2, Name: "Marcador", Price: 1.00, Quantity: 3},
}

func TestBuildMessage(t *testing.T) {
	totals := cart.Calculate(orderItems, "Quito")
	msg := BuildMessage(orderItems, totals, "Ana", "Quito")

	for _, want := range []string{
		"Soy Ana.",
		"• Cuaderno (x2) – $5.00",
		"• Marcador (x3) – $3.00",
		"Subtotal: $8.00",
		"Envío a Quito: $2.00",
		"*Total: $10.00*",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}

	if !strings.HasPrefix(msg, "Hola") {
		t.Fatalf("message should open with the greeting:\n%s", msg)
	}
}

func TestBuildMessageBlankNameFallsBack(t *testing.T) {
	totals := cart.Calculate(orderItems, "Quito")

	for _, name := range []string{"", "   "} {
		msg := BuildMessage(orderItems, totals, name, "Quito")
		if !strings.Contains(msg, "Soy Cliente.") {
			t.Fatalf("expected fallback name for %q:\n%s", name, msg)
		}
	}
}

func TestWhatsAppURL(t *testing.T) {
	msg := BuildMessage(orderItems, cart.Calculate(orderItems, "Quito"), "Ana", "Quito")
	raw := WhatsAppURL("593998469884", msg)

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("invalid URL: %v", err)
	}
	if u.Scheme != "https" || u.Host != "wa.me" {
		t.Fatalf("unexpected endpoint: %s", raw)
	}
	if u.Path != "/593998469884" {
		t.Fatalf("unexpected path: %s", u.Path)
	}

	// the message must survive the encoding round trip intact
	if got := u.Query().Get("text"); got != msg {
		t.Fatalf("decoded text differs:\nwant %q\ngot  %q", msg, got)
	}
}
