package products

import "time"

// Product represents an item in the electronics catalog. Prices are stored
// as numeric(10,2) and surfaced as floats on the wire.
type Product struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"original_price"`
	ImageURL      string    `json:"image_url"`
	Category      string    `json:"category"`
	IsFeatured    bool      `json:"is_featured"`
	IsNew         bool      `json:"is_new"`
	StockQuantity int       `json:"stock_quantity"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
