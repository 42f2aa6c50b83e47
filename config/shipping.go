package config

// shippingRates is the flat delivery fee per destination city. "Otro"
// covers any city outside the listed ones.
var shippingRates = map[string]float64{
	"Quito":     2.00,
	"Guayaquil": 4.00,
	"Cuenca":    4.00,
	"Otro":      6.00,
}

// ShippingRate returns the fee for a city and whether the city is known
// to the rate table. An empty or unknown city carries no fee.
func ShippingRate(city string) (float64, bool) {
	rate, ok := shippingRates[city]
	return rate, ok
}

// ShippingCities lists the selectable destinations in menu order.
func ShippingCities() []string {
	return []string{"Quito", "Guayaquil", "Cuenca", "Otro"}
}
