package store

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/avc-dev/shortener-stats/internal/model"
	"github.com/google/uuid"
)

// MappingMap представляет сопоставления, индексированные по короткому коду
type MappingMap = map[model.Code]model.Mapping

// Store хранит сопоставления в памяти процесса
type Store struct {
	store    MappingMap
	codeByID map[string]model.Code
	mutex    sync.Mutex
}

func NewStore() *Store {
	return &Store{
		store:    make(MappingMap),
		codeByID: make(map[string]model.Code),
	}
}

func (s *Store) Exists(_ context.Context, code model.Code) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	_, ok := s.store[code]
	return ok, nil
}

func (s *Store) Find(_ context.Context, code model.Code) (model.Mapping, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	mapping, ok := s.store[code]
	if !ok {
		return model.Mapping{}, fmt.Errorf("code %s: %w", code, model.ErrNotFound)
	}

	return mapping, nil
}

// Insert добавляет запись и присваивает ей ID
func (s *Store) Insert(_ context.Context, mapping model.Mapping) (model.Mapping, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.store[mapping.ShortCode]; exists {
		return model.Mapping{}, fmt.Errorf("code %s: %w", mapping.ShortCode, model.ErrShortCodeTaken)
	}

	mapping.ID = uuid.NewString()
	s.store[mapping.ShortCode] = mapping
	s.codeByID[mapping.ID] = mapping.ShortCode

	return mapping, nil
}

// Save обновляет URL и время изменения записи с тем же ID.
// Счетчик обращений меняет только IncrementAccessCount.
func (s *Store) Save(_ context.Context, mapping model.Mapping) (model.Mapping, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	code, ok := s.codeByID[mapping.ID]
	if !ok {
		return model.Mapping{}, fmt.Errorf("id %s: %w", mapping.ID, model.ErrNotFound)
	}

	stored := s.store[code]
	stored.URL = mapping.URL
	stored.UpdatedAt = mapping.UpdatedAt
	s.store[code] = stored

	return stored, nil
}

func (s *Store) Delete(_ context.Context, code model.Code) (int64, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	mapping, ok := s.store[code]
	if !ok {
		return 0, nil
	}

	delete(s.store, code)
	delete(s.codeByID, mapping.ID)

	return 1, nil
}

func (s *Store) IncrementAccessCount(_ context.Context, code model.Code) (model.Mapping, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	mapping, ok := s.store[code]
	if !ok {
		return model.Mapping{}, fmt.Errorf("code %s: %w", code, model.ErrNotFound)
	}

	mapping.AccessCount++
	s.store[code] = mapping

	return mapping, nil
}

// InitializeWith заполняет хранилище готовыми записями без проверок.
// Используется для загрузки данных из файла.
func (s *Store) InitializeWith(mappings []model.Mapping) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, mapping := range mappings {
		s.store[mapping.ShortCode] = mapping
		s.codeByID[mapping.ID] = mapping.ShortCode
	}
}

// Restore заменяет содержимое хранилища снимком, полученным из Snapshot
func (s *Store) Restore(mappings []model.Mapping) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.store = make(MappingMap, len(mappings))
	s.codeByID = make(map[string]model.Code, len(mappings))
	for _, mapping := range mappings {
		s.store[mapping.ShortCode] = mapping
		s.codeByID[mapping.ID] = mapping.ShortCode
	}
}

// Snapshot возвращает копию всех записей в порядке создания
func (s *Store) Snapshot() []model.Mapping {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	mappings := make([]model.Mapping, 0, len(s.store))
	for _, mapping := range s.store {
		mappings = append(mappings, mapping)
	}

	slices.SortFunc(mappings, func(a, b model.Mapping) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ShortCode, b.ShortCode)
	})

	return mappings
}
