package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/avc-dev/shortener-stats/internal/model"
)

// FileStore декоратор над Store, который добавляет персистентность через файл.
// После каждого изменения файл перезаписывается снимком всех записей.
// Если файл записать не удалось, изменение в памяти откатывается.
type FileStore struct {
	store       *Store
	fileStorage *FileStorage
	// сериализует изменение и запись файла, чтобы файл не отставал от памяти
	mu sync.Mutex
}

// NewFileStore создаёт FileStore и загружает данные из файла
func NewFileStore(filePath string) (*FileStore, error) {
	fs := &FileStore{
		store:       NewStore(),
		fileStorage: NewFileStorage(filePath),
	}

	if err := fs.loadFromFile(); err != nil {
		return nil, fmt.Errorf("failed to load data from file: %w", err)
	}

	return fs, nil
}

func (fs *FileStore) Exists(ctx context.Context, code model.Code) (bool, error) {
	return fs.store.Exists(ctx, code)
}

func (fs *FileStore) Find(ctx context.Context, code model.Code) (model.Mapping, error) {
	return fs.store.Find(ctx, code)
}

func (fs *FileStore) Insert(ctx context.Context, mapping model.Mapping) (model.Mapping, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	before := fs.store.Snapshot()

	created, err := fs.store.Insert(ctx, mapping)
	if err != nil {
		return model.Mapping{}, err
	}

	if err := fs.persist(before); err != nil {
		return model.Mapping{}, err
	}

	return created, nil
}

func (fs *FileStore) Save(ctx context.Context, mapping model.Mapping) (model.Mapping, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	before := fs.store.Snapshot()

	saved, err := fs.store.Save(ctx, mapping)
	if err != nil {
		return model.Mapping{}, err
	}

	if err := fs.persist(before); err != nil {
		return model.Mapping{}, err
	}

	return saved, nil
}

func (fs *FileStore) Delete(ctx context.Context, code model.Code) (int64, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	before := fs.store.Snapshot()

	removed, err := fs.store.Delete(ctx, code)
	if err != nil || removed == 0 {
		return removed, err
	}

	if err := fs.persist(before); err != nil {
		return 0, err
	}

	return removed, nil
}

func (fs *FileStore) IncrementAccessCount(ctx context.Context, code model.Code) (model.Mapping, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	before := fs.store.Snapshot()

	mapping, err := fs.store.IncrementAccessCount(ctx, code)
	if err != nil {
		return model.Mapping{}, err
	}

	if err := fs.persist(before); err != nil {
		return model.Mapping{}, err
	}

	return mapping, nil
}

// persist записывает текущий снимок хранилища в файл.
// При ошибке хранилище возвращается к состоянию before.
func (fs *FileStore) persist(before []model.Mapping) error {
	snapshot := fs.store.Snapshot()

	entries := make([]model.MappingEntry, len(snapshot))
	for i, mapping := range snapshot {
		entries[i] = mapping.ToEntry()
	}

	if err := fs.fileStorage.Save(entries); err != nil {
		fs.store.Restore(before)
		return fmt.Errorf("failed to save file: %w", err)
	}

	return nil
}

// loadFromFile загружает данные из файла в in-memory store
func (fs *FileStore) loadFromFile() error {
	entries, err := fs.fileStorage.Load()
	if err != nil {
		return err
	}

	mappings := make([]model.Mapping, len(entries))
	for i, entry := range entries {
		mappings[i] = entry.ToMapping()
	}

	fs.store.InitializeWith(mappings)

	return nil
}
