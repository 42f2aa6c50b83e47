package models

// CartLineItem is a snapshot of a product's display fields plus the
// requested quantity. Identity is ProductID: the cart never holds two
// lines for the same product, and a stored quantity is always >= 1.
// The JSON shape matches the persisted cart snapshot.
type CartLineItem struct {
	ProductID uint    `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Category  string  `json:"category"`
	Img       string  `json:"img"`
	Quantity  int     `json:"quantity"`
}

// LineTotal is the price of the line across its quantity.
func (i CartLineItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}
