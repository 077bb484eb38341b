package usecase

import (
	"context"

	"github.com/avc-dev/shortener-stats/internal/model"
)

// ResolveShortURL возвращает сопоставление по коду и учитывает обращение
func (u *URLUsecase) ResolveShortURL(ctx context.Context, code string) (model.MappingResponse, error) {
	mapping, err := u.service.Resolve(ctx, model.Code(code))
	if err != nil {
		return model.MappingResponse{}, u.serviceError("failed to resolve short URL", code, err)
	}

	return u.toMappingResponse(mapping)
}
