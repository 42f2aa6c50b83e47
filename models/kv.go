package models

// KVEntry is one row of the snapshot store: the cart, the selected city
// and the client name each live under their own key.
type KVEntry struct {
	Key   string `gorm:"primaryKey;size:64" json:"key"`
	Value string `json:"value"`
}
