package newsletter

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/createNewsletterSubscription", h.Subscribe)
	r.Post("/unsubscribeNewsletter", h.Unsubscribe)
	r.Get("/getNewsletterSubscribers", h.Subscribers)
}
