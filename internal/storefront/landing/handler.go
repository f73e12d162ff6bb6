package landing

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/voltmart/voltmart/internal/platform/httpx"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/getLandingPageData", h.Get)
}

// Get serves the whole-page aggregate. There is no partial delivery: if any
// underlying read fails, the call fails and the client substitutes
// EmptyData's shape.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.Data(r.Context())
	if err != nil {
		h.logger.Error("get landing page data failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, data)
}
