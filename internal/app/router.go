package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/voltmart/voltmart/internal/catalog/categories"
	"github.com/voltmart/voltmart/internal/catalog/products"
	"github.com/voltmart/voltmart/internal/platform/httpx"
	"github.com/voltmart/voltmart/internal/storefront/banners"
	"github.com/voltmart/voltmart/internal/storefront/landing"
	"github.com/voltmart/voltmart/internal/storefront/newsletter"
	"github.com/voltmart/voltmart/internal/storefront/testimonials"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger             *slog.Logger
	Config             *Config
	LandingHandler     *landing.Handler
	ProductHandler     *products.Handler
	CategoryHandler    *categories.Handler
	TestimonialHandler *testimonials.Handler
	NewsletterHandler  *newsletter.Handler
	BannerHandler      *banners.Handler
}

// NewRouter constructs the chi.Router exposing the storefront procedures
// under /rpc, queries as GET and mutations as POST.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/rpc", func(r chi.Router) {
		r.Get("/healthcheck", healthcheck)
		params.LandingHandler.MountRoutes(r)
		params.ProductHandler.MountRoutes(r)
		params.CategoryHandler.MountRoutes(r)
		params.TestimonialHandler.MountRoutes(r)
		params.NewsletterHandler.MountRoutes(r)
		params.BannerHandler.MountRoutes(r)
	})

	return r
}

type healthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func healthcheck(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, healthStatus{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
