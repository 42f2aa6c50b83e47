package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/yenrise/milcolores-api/cart"
	"github.com/yenrise/milcolores-api/models"
)

// FallbackClientName is used when the client left the name field blank.
const FallbackClientName = "Cliente"

// BuildMessage renders the WhatsApp order text: greeting, one line per
// product, then the subtotal / shipping / total block. Amounts always
// carry two decimals.
func BuildMessage(items []models.CartLineItem, totals cart.Totals, clientName, city string) string {
	name := strings.TrimSpace(clientName)
	if name == "" {
		name = FallbackClientName
	}

	var b strings.Builder
	b.WriteString("Hola 👋, buen día.\n")
	fmt.Fprintf(&b, "Soy %s.\n", name)
	b.WriteString("Quisiera realizar el siguiente pedido en Mil Colores 🛍️\n\n")
	b.WriteString("📦 *Productos:*\n")
	for _, item := range items {
		fmt.Fprintf(&b, "• %s (x%d) – $%.2f\n", item.Name, item.Quantity, item.LineTotal())
	}
	b.WriteString("\n🧾 *Resumen:*\n")
	fmt.Fprintf(&b, "Subtotal: $%.2f\n", totals.Subtotal)
	fmt.Fprintf(&b, "Envío a %s: $%.2f\n", city, totals.Shipping)
	fmt.Fprintf(&b, "*Total: $%.2f*\n\n", totals.Total)
	b.WriteString("¿Podrían confirmarme disponibilidad y tiempo de entrega, por favor?\n¡Gracias!")
	return b.String()
}

// WhatsAppURL percent-encodes the message into the wa.me handoff link the
// client opens in a new tab.
func WhatsAppURL(phone, message string) string {
	u := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     "/" + phone,
		RawQuery: url.Values{"text": {message}}.Encode(),
	}
	return u.String()
}
