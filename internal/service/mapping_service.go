package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc-dev/shortener-stats/internal/model"
)

// MappingService управляет жизненным циклом сопоставлений и обеспечивает их инварианты
type MappingService struct {
	repo          MappingRepository
	codeGenerator Generator
	maxAttempts   int
	now           func() time.Time
}

// NewMappingService создает новый экземпляр MappingService.
// maxAttempts ограничивает число попыток подбора кода, 0 снимает ограничение.
func NewMappingService(repo MappingRepository, maxAttempts int) *MappingService {
	return &MappingService{
		repo:          repo,
		codeGenerator: NewCodeGenerator(),
		maxAttempts:   maxAttempts,
		now:           func() time.Time { return time.Now() },
	}
}

// CreateMapping подбирает свободный код и сохраняет новое сопоставление
func (s *MappingService) CreateMapping(ctx context.Context, url model.URL) (model.Mapping, error) {
	for attempt := 0; s.maxAttempts == 0 || attempt < s.maxAttempts; attempt++ {
		code := s.codeGenerator.GenerateCode()

		exists, err := s.repo.Exists(ctx, code)
		if err != nil {
			return model.Mapping{}, fmt.Errorf("failed to check code %s: %w", code, err)
		}
		if exists {
			continue
		}

		now := s.timestamp()
		created, err := s.repo.Insert(ctx, model.Mapping{
			URL:         url,
			ShortCode:   code,
			CreatedAt:   now,
			UpdatedAt:   now,
			AccessCount: 0,
		})
		if errors.Is(err, model.ErrShortCodeTaken) {
			// код заняли между проверкой и вставкой
			continue
		}
		if err != nil {
			return model.Mapping{}, fmt.Errorf("failed to insert mapping: %w", err)
		}

		return created, nil
	}

	return model.Mapping{}, fmt.Errorf("failed to generate unique code after %d attempts: %w", s.maxAttempts, ErrMaxRetriesExceeded)
}

// Resolve возвращает сопоставление и учитывает обращение к нему
func (s *MappingService) Resolve(ctx context.Context, code model.Code) (model.Mapping, error) {
	mapping, err := s.repo.IncrementAccessCount(ctx, code)
	if err != nil {
		return model.Mapping{}, fmt.Errorf("failed to resolve code %s: %w", code, err)
	}

	return mapping, nil
}

// UpdateMapping меняет URL существующего сопоставления.
// Код, ID, время создания и счетчик обращений не меняются.
func (s *MappingService) UpdateMapping(ctx context.Context, code model.Code, url model.URL) (model.Mapping, error) {
	mapping, err := s.repo.Find(ctx, code)
	if err != nil {
		return model.Mapping{}, fmt.Errorf("failed to find code %s: %w", code, err)
	}

	updatedAt := s.timestamp()
	if updatedAt.Before(mapping.UpdatedAt) {
		updatedAt = mapping.UpdatedAt
	}

	mapping.URL = url
	mapping.UpdatedAt = updatedAt

	saved, err := s.repo.Save(ctx, mapping)
	if err != nil {
		return model.Mapping{}, fmt.Errorf("failed to save code %s: %w", code, err)
	}

	return saved, nil
}

// DeleteMapping удаляет сопоставление, false если его не было
func (s *MappingService) DeleteMapping(ctx context.Context, code model.Code) (bool, error) {
	removed, err := s.repo.Delete(ctx, code)
	if err != nil {
		return false, fmt.Errorf("failed to delete code %s: %w", code, err)
	}

	return removed > 0, nil
}

// GetStats возвращает снимок сопоставления без изменения счетчика
func (s *MappingService) GetStats(ctx context.Context, code model.Code) (model.MappingStats, error) {
	mapping, err := s.repo.Find(ctx, code)
	if err != nil {
		return model.MappingStats{}, fmt.Errorf("failed to find code %s: %w", code, err)
	}

	return mapping.Stats(), nil
}

// timestamp время с точностью до микросекунд, как хранит PostgreSQL
func (s *MappingService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}
