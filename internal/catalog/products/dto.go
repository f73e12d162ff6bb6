package products

// CreateProductRequest is the createProduct mutation input. The featured and
// new flags are optional and default to false at the validation boundary.
type CreateProductRequest struct {
	Name          string   `json:"name" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	OriginalPrice *float64 `json:"original_price" validate:"omitempty,gt=0"`
	ImageURL      string   `json:"image_url" validate:"required,url"`
	Category      string   `json:"category" validate:"required"`
	IsFeatured    *bool    `json:"is_featured,omitempty"`
	IsNew         *bool    `json:"is_new,omitempty"`
	StockQuantity int      `json:"stock_quantity" validate:"gte=0"`
}
