package products

import (
	"log/slog"
	"net/http"

	"github.com/voltmart/voltmart/internal/platform/httpx"
	"github.com/voltmart/voltmart/internal/shared"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

func (h *Handler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Featured(r.Context(), 0)
	if err != nil {
		h.logger.Error("get featured products failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) GetNew(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.NewArrivals(r.Context(), 0)
	if err != nil {
		h.logger.Error("get new products failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) GetByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "category is required")
		return
	}
	result, err := h.service.ByCategory(r.Context(), category)
	if err != nil {
		h.logger.Error("get products by category failed", "error", err, "category", category)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid request body")
		return
	}
	created, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create product failed", "error", err, "detail", shared.UserSafeMessage(err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}
