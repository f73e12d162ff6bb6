package testimonials

// CreateTestimonialRequest is the createTestimonial mutation input.
type CreateTestimonialRequest struct {
	CustomerName   string  `json:"customer_name" validate:"required"`
	CustomerAvatar *string `json:"customer_avatar" validate:"omitempty,url"`
	Rating         int     `json:"rating" validate:"required,gte=1,lte=5"`
	ReviewText     string  `json:"review_text" validate:"required"`
	ProductID      *int64  `json:"product_id" validate:"omitempty,gt=0"`
	IsFeatured     *bool   `json:"is_featured,omitempty"`
}
