package service

import (
	"context"

	"github.com/avc-dev/shortener-stats/internal/model"
)

//go:generate mockery --name MappingRepository

// MappingRepository определяет операции хранилища сопоставлений
type MappingRepository interface {
	Exists(ctx context.Context, code model.Code) (bool, error)
	// Find возвращает model.ErrNotFound если записи нет
	Find(ctx context.Context, code model.Code) (model.Mapping, error)
	// Insert присваивает ID; model.ErrShortCodeTaken если код уже занят
	Insert(ctx context.Context, mapping model.Mapping) (model.Mapping, error)
	// Save сохраняет изменяемые поля записи, поиск по ID
	Save(ctx context.Context, mapping model.Mapping) (model.Mapping, error)
	// Delete возвращает количество удаленных записей (0 или 1)
	Delete(ctx context.Context, code model.Code) (int64, error)
	// IncrementAccessCount атомарно увеличивает счетчик обращений на единицу
	IncrementAccessCount(ctx context.Context, code model.Code) (model.Mapping, error)
}

//go:generate mockery --name Generator

// Generator генерирует коды-кандидаты
type Generator interface {
	GenerateCode() model.Code
}
