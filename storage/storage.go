package storage

// Keys of the three independent snapshot entries. Kept verbatim from the
// storefront so an exported browser snapshot stays readable.
const (
	KeyCart = "milColores_cart"
	KeyCity = "milColores_city"
	KeyName = "milColores_name"
)

// KV is the durable string-keyed store backing cart and checkout-context
// persistence. Get reports presence separately from failure so a missing
// key is not an error.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}
