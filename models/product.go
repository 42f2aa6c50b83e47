package models

// Product is one catalog entry. The catalog comes from a static JSON
// resource and is held in memory only; a reload replaces the whole list.
type Product struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Img      string  `json:"img"`
}
