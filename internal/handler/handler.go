package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc-dev/shortener-stats/internal/model"
	"github.com/avc-dev/shortener-stats/internal/usecase"
	"go.uber.org/zap"
)

//go:generate mockery --name URLUsecase

// URLUsecase определяет операции, которые вызывают обработчики
type URLUsecase interface {
	CreateShortURL(ctx context.Context, urlString string) (model.MappingResponse, error)
	ResolveShortURL(ctx context.Context, code string) (model.MappingResponse, error)
	UpdateShortURL(ctx context.Context, code string, urlString string) (model.MappingResponse, error)
	DeleteShortURL(ctx context.Context, code string) error
	GetURLStats(ctx context.Context, code string) (model.StatsResponse, error)
}

// Pinger проверяет доступность хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler обрабатывает HTTP запросы к API коротких ссылок
type Handler struct {
	usecase URLUsecase
	logger  *zap.Logger
	pinger  Pinger
}

// New создает обработчик. pinger может быть nil, если хранилищу нечего проверять.
func New(usecase URLUsecase, logger *zap.Logger, pinger Pinger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
		pinger:  pinger,
	}
}

// decodeShortenRequest читает тело {"url": "..."}
func (h *Handler) decodeShortenRequest(w http.ResponseWriter, req *http.Request) (model.ShortenRequest, bool) {
	var request model.ShortenRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		h.logger.Warn("failed to decode JSON request",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		w.WriteHeader(http.StatusBadRequest)
		return model.ShortenRequest{}, false
	}

	return request, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// handleError переводит ошибки usecase в HTTP статусы
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrEmptyURL), errors.Is(err, usecase.ErrInvalidURL):
		h.logger.Debug("invalid request", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
	case errors.Is(err, usecase.ErrURLNotFound):
		w.WriteHeader(http.StatusNotFound)
	default:
		h.logger.Error("request failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}
