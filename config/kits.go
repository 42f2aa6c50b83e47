package config

// Kits maps a kit name to the product ids it bundles, in add order.
// Adding a kit applies the normal merge-or-create cart logic per id;
// ids missing from the catalog are skipped.
var Kits = map[string][]uint{
	"escolar": {1, 2, 3, 8},
	"oficina": {4, 5},
}
