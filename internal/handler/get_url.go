package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetURL обрабатывает GET /shorten/{code}, каждый успешный вызов увеличивает счетчик
func (h *Handler) GetURL(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "code")

	response, err := h.usecase.ResolveShortURL(req.Context(), code)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, response)
}
