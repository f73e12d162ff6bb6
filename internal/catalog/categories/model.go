package categories

import "time"

// Category organizes products for storefront navigation. The slug is a
// caller-supplied URL-safe identifier and must be unique.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Slug        string    `json:"slug"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}
