package handler

import (
	"net/http"
)

// CreateURL обрабатывает POST /shorten
func (h *Handler) CreateURL(w http.ResponseWriter, req *http.Request) {
	request, ok := h.decodeShortenRequest(w, req)
	if !ok {
		return
	}

	response, err := h.usecase.CreateShortURL(req.Context(), request.URL)
	if err != nil {
		h.handleError(w, err)
		return
	}

	if response.ShortURL != "" {
		w.Header().Set("Location", response.ShortURL)
	}
	h.writeJSON(w, http.StatusCreated, response)
}
