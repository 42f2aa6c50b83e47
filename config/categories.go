package config

// CategoryAll is the pseudo-category that matches every product.
const CategoryAll = "Todas"

// Categories lists the fixed product categories in menu order.
var Categories = []string{
	"Escolares",
	"Oficina",
	"Arte",
	"Juegos",
	"Creativa",
	"Detalles",
	"Cajas",
}
