package categories

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/getCategories", h.List)
	r.Post("/createCategory", h.Create)
}
