package products

import (
	"github.com/go-chi/chi/v5"
)

// MountRoutes registers the product procedures. Names mirror the public
// RPC surface: queries are GET, mutations are POST.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/getFeaturedProducts", h.GetFeatured)
	r.Get("/getNewProducts", h.GetNew)
	r.Get("/getProductsByCategory", h.GetByCategory)
	r.Post("/createProduct", h.Create)
}
