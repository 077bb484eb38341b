package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// UpdateURL обрабатывает PUT /shorten/{code}
func (h *Handler) UpdateURL(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "code")

	request, ok := h.decodeShortenRequest(w, req)
	if !ok {
		return
	}

	response, err := h.usecase.UpdateShortURL(req.Context(), code, request.URL)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, response)
}
