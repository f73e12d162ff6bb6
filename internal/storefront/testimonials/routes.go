package testimonials

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/getFeaturedTestimonials", h.GetFeatured)
	r.Post("/createTestimonial", h.Create)
}
