package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// DeleteURL обрабатывает DELETE /shorten/{code}
func (h *Handler) DeleteURL(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "code")

	if err := h.usecase.DeleteShortURL(req.Context(), code); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
