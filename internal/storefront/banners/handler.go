package banners

import (
	"log/slog"
	"net/http"

	"github.com/voltmart/voltmart/internal/platform/httpx"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// GetActive responds with the current banner or a JSON null when none is
// active; an absent banner is not an error.
func (h *Handler) GetActive(w http.ResponseWriter, r *http.Request) {
	banner, err := h.service.Active(r.Context())
	if err != nil {
		h.logger.Error("get active hero banner failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, banner)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateHeroBannerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid request body")
		return
	}
	created, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create hero banner failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}
