package products

type Product struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	Price    float64    `json:"price"`
	Category string     `json:"category"`
	Quantity int        `json:"quantity"`
	Status   StatusCode `json:"status"`
	Rating   int        `json:"rating"`
}
