package usecase

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortener-stats/internal/model"
	"go.uber.org/zap"
)

// DeleteShortURL удаляет сопоставление, ErrURLNotFound если кода нет
func (u *URLUsecase) DeleteShortURL(ctx context.Context, code string) error {
	deleted, err := u.service.DeleteMapping(ctx, model.Code(code))
	if err != nil {
		return u.serviceError("failed to delete short URL", code, err)
	}

	if !deleted {
		return fmt.Errorf("%w: %s", ErrURLNotFound, code)
	}

	u.logger.Info("short URL deleted", zap.String("code", code))

	return nil
}
