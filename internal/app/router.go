package app

import (
	"net/http"

	"github.com/avc-dev/shortener-stats/internal/handler"
	"github.com/avc-dev/shortener-stats/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/handlers"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения
func newRouter(h *handler.Handler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.GzipMiddleware(logger))

	// Routes
	r.Get("/ping", h.Ping)
	r.Post("/shorten", h.CreateURL)
	r.Get("/shorten/{code}", h.GetURL)
	r.Put("/shorten/{code}", h.UpdateURL)
	r.Delete("/shorten/{code}", h.DeleteURL)
	r.Get("/shorten/{code}/stats", h.GetURLStats)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Content-Encoding", "Accept-Encoding"}),
		handlers.ExposedHeaders([]string{"Location"}),
	)

	return cors(r)
}
