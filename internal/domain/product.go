package domain

// Product is a catalog entry owned by the products service. Only the fields
// the order flow needs are kept.
type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}
