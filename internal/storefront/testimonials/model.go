package testimonials

import "time"

// Testimonial is a customer review surfaced on the landing page. ProductID
// is an advisory back-reference; nothing checks the product exists.
type Testimonial struct {
	ID             int64     `json:"id"`
	CustomerName   string    `json:"customer_name"`
	CustomerAvatar *string   `json:"customer_avatar"`
	Rating         int       `json:"rating"`
	ReviewText     string    `json:"review_text"`
	ProductID      *int64    `json:"product_id"`
	IsFeatured     bool      `json:"is_featured"`
	CreatedAt      time.Time `json:"created_at"`
}
