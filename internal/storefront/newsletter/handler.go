package newsletter

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

func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid request body")
		return
	}
	sub, err := h.service.Subscribe(r.Context(), req)
	if err != nil {
		h.logger.Error("newsletter subscribe failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, sub)
}

func (h *Handler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var req UnsubscribeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid request body")
		return
	}
	sub, err := h.service.Unsubscribe(r.Context(), req)
	if err != nil {
		h.logger.Error("newsletter unsubscribe failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, sub)
}

func (h *Handler) Subscribers(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ActiveSubscribers(r.Context())
	if err != nil {
		h.logger.Error("get newsletter subscribers failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}
