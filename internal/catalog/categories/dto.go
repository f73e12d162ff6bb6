package categories

// CreateCategoryRequest is the createCategory mutation input. No slug
// normalization happens server side; callers supply an URL-safe slug.
type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Slug        string  `json:"slug" validate:"required,max=100"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url"`
}
