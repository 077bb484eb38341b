package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortener-stats/internal/model"
)

//go:generate mockery --name Store

// Store операции, которые должен поддерживать движок хранения сопоставлений
type Store interface {
	Exists(ctx context.Context, code model.Code) (bool, error)
	Find(ctx context.Context, code model.Code) (model.Mapping, error)
	Insert(ctx context.Context, mapping model.Mapping) (model.Mapping, error)
	Save(ctx context.Context, mapping model.Mapping) (model.Mapping, error)
	Delete(ctx context.Context, code model.Code) (int64, error)
	IncrementAccessCount(ctx context.Context, code model.Code) (model.Mapping, error)
}

type Repository struct {
	underlying Store
}

func New(underlying Store) *Repository {
	return &Repository{underlying}
}

func (r Repository) Exists(ctx context.Context, code model.Code) (bool, error) {
	exists, err := r.underlying.Exists(ctx, code)
	if err != nil {
		return false, fmt.Errorf("failed to check code existence: %w", err)
	}
	return exists, nil
}

func (r Repository) Find(ctx context.Context, code model.Code) (model.Mapping, error) {
	mapping, err := r.underlying.Find(ctx, code)
	if err != nil {
		return model.Mapping{}, fmt.Errorf("failed to find mapping: %w", err)
	}
	return mapping, nil
}

func (r Repository) Insert(ctx context.Context, mapping model.Mapping) (model.Mapping, error) {
	created, err := r.underlying.Insert(ctx, mapping)
	if err != nil {
		return model.Mapping{}, fmt.Errorf("failed to insert mapping: %w", err)
	}
	return created, nil
}

func (r Repository) Save(ctx context.Context, mapping model.Mapping) (model.Mapping, error) {
	saved, err := r.underlying.Save(ctx, mapping)
	if err != nil {
		return model.Mapping{}, fmt.Errorf("failed to save mapping: %w", err)
	}
	return saved, nil
}

func (r Repository) Delete(ctx context.Context, code model.Code) (int64, error) {
	removed, err := r.underlying.Delete(ctx, code)
	if err != nil {
		return 0, fmt.Errorf("failed to delete mapping: %w", err)
	}
	return removed, nil
}

func (r Repository) IncrementAccessCount(ctx context.Context, code model.Code) (model.Mapping, error) {
	mapping, err := r.underlying.IncrementAccessCount(ctx, code)
	if err != nil {
		return model.Mapping{}, fmt.Errorf("failed to increment access count: %w", err)
	}
	return mapping, nil
}
