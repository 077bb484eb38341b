package usecase

import (
	"context"

	"github.com/avc-dev/shortener-stats/internal/config"
	"github.com/avc-dev/shortener-stats/internal/model"
	"go.uber.org/zap"
)

//go:generate mockery --name MappingService

// MappingService определяет операции сервиса сопоставлений
type MappingService interface {
	CreateMapping(ctx context.Context, url model.URL) (model.Mapping, error)
	Resolve(ctx context.Context, code model.Code) (model.Mapping, error)
	UpdateMapping(ctx context.Context, code model.Code, url model.URL) (model.Mapping, error)
	DeleteMapping(ctx context.Context, code model.Code) (bool, error)
	GetStats(ctx context.Context, code model.Code) (model.MappingStats, error)
}

// URLUsecase валидирует входные данные, вызывает сервис и формирует ответы
type URLUsecase struct {
	service MappingService
	cfg     *config.Config
	logger  *zap.Logger
}

// NewURLUsecase создает новый экземпляр URLUsecase
func NewURLUsecase(service MappingService, cfg *config.Config, logger *zap.Logger) *URLUsecase {
	return &URLUsecase{
		service: service,
		cfg:     cfg,
		logger:  logger,
	}
}
