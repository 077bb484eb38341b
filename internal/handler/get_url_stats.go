package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetURLStats обрабатывает GET /shorten/{code}/stats
func (h *Handler) GetURLStats(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "code")

	stats, err := h.usecase.GetURLStats(req.Context(), code)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}
