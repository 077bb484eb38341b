package usecase

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/avc-dev/shortener-stats/internal/model"
	"go.uber.org/zap"
)

// toMappingResponse формирует ответ с полной короткой ссылкой
func (u *URLUsecase) toMappingResponse(mapping model.Mapping) (model.MappingResponse, error) {
	shortURL, err := url.JoinPath(u.cfg.BaseURL.String(), "shorten", string(mapping.ShortCode))
	if err != nil {
		u.logger.Error("failed to build short URL",
			zap.String("base_url", u.cfg.BaseURL.String()),
			zap.String("code", string(mapping.ShortCode)),
			zap.Error(err),
		)
		return model.MappingResponse{}, fmt.Errorf("%w: failed to build short URL: %w", ErrServiceUnavailable, err)
	}

	return model.MappingResponse{
		ID:        mapping.ID,
		URL:       mapping.URL.String(),
		ShortCode: mapping.ShortCode.String(),
		ShortURL:  shortURL,
		CreatedAt: mapping.CreatedAt,
		UpdatedAt: mapping.UpdatedAt,
	}, nil
}

func toStatsResponse(stats model.MappingStats) model.StatsResponse {
	return model.StatsResponse{
		ID:          stats.ID,
		URL:         stats.URL.String(),
		ShortCode:   stats.ShortCode.String(),
		CreatedAt:   stats.CreatedAt,
		UpdatedAt:   stats.UpdatedAt,
		AccessCount: stats.AccessCount,
	}
}

// serviceError отделяет отсутствие записи от сбоя инфраструктуры
func (u *URLUsecase) serviceError(msg, code string, err error) error {
	if errors.Is(err, model.ErrNotFound) {
		u.logger.Debug("short code not found", zap.String("code", code))
		return fmt.Errorf("%w: %w", ErrURLNotFound, err)
	}

	u.logger.Error(msg,
		zap.String("code", code),
		zap.Error(err),
	)
	return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
}
