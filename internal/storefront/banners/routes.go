package banners

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/getActiveHeroBanner", h.GetActive)
	r.Post("/createHeroBanner", h.Create)
}
