package usecase

import (
	"context"

	"github.com/avc-dev/shortener-stats/internal/model"
	"go.uber.org/zap"
)

// UpdateShortURL заменяет оригинальный URL для существующего кода
func (u *URLUsecase) UpdateShortURL(ctx context.Context, code string, urlString string) (model.MappingResponse, error) {
	newURL, err := parseURL(urlString)
	if err != nil {
		return model.MappingResponse{}, err
	}

	mapping, err := u.service.UpdateMapping(ctx, model.Code(code), newURL)
	if err != nil {
		return model.MappingResponse{}, u.serviceError("failed to update short URL", code, err)
	}

	u.logger.Info("short URL updated", zap.String("code", code))

	return u.toMappingResponse(mapping)
}
