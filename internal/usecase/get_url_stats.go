package usecase

import (
	"context"

	"github.com/avc-dev/shortener-stats/internal/model"
)

// GetURLStats возвращает статистику обращений, не изменяя счетчик
func (u *URLUsecase) GetURLStats(ctx context.Context, code string) (model.StatsResponse, error) {
	stats, err := u.service.GetStats(ctx, model.Code(code))
	if err != nil {
		return model.StatsResponse{}, u.serviceError("failed to get URL stats", code, err)
	}

	return toStatsResponse(stats), nil
}
