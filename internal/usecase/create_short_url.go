package usecase

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortener-stats/internal/model"
	"go.uber.org/zap"
)

// CreateShortURL создает короткую ссылку для строки оригинального URL
func (u *URLUsecase) CreateShortURL(ctx context.Context, urlString string) (model.MappingResponse, error) {
	originalURL, err := parseURL(urlString)
	if err != nil {
		return model.MappingResponse{}, err
	}

	mapping, err := u.service.CreateMapping(ctx, originalURL)
	if err != nil {
		u.logger.Error("failed to create short URL",
			zap.String("original_url", string(originalURL)),
			zap.Error(err),
		)
		return model.MappingResponse{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	u.logger.Info("short URL created",
		zap.String("code", string(mapping.ShortCode)),
		zap.String("id", mapping.ID),
	)

	return u.toMappingResponse(mapping)
}
