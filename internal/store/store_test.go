package store

import (
	"context"
	"testing"
	"time"

	"github.com/avc-dev/shortener-stats/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewStore проверяет создание нового хранилища
func TestNewStore(t *testing.T) {
	// Act
	store := NewStore()

	// Assert
	require.NotNil(t, store)
	assert.Empty(t, store.store)
	assert.Empty(t, store.codeByID)
}

func TestStore_Contract(t *testing.T) {
	runBackendContract(t, func(t *testing.T) Backend {
		return NewStore()
	})
}

// TestStore_InitializeWith проверяет загрузку готовых записей
func TestStore_InitializeWith(t *testing.T) {
	// Arrange
	ctx := context.Background()
	store := NewStore()
	mappings := []model.Mapping{
		{ID: "id-1", ShortCode: "code01", URL: "https://example.com/1", AccessCount: 2},
		{ID: "id-2", ShortCode: "code02", URL: "https://example.com/2"},
	}

	// Act
	store.InitializeWith(mappings)

	// Assert
	for _, expected := range mappings {
		found, err := store.Find(ctx, expected.ShortCode)
		require.NoError(t, err)
		assert.Equal(t, expected, found)
	}

	// Save ищет запись по ID, значит индекс тоже восстановлен
	updated := mappings[0]
	updated.URL = "https://updated.com"
	saved, err := store.Save(ctx, updated)
	require.NoError(t, err)
	assert.Equal(t, int64(2), saved.AccessCount)
}

// TestStore_Snapshot проверяет порядок записей в снимке
func TestStore_Snapshot(t *testing.T) {
	// Arrange
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewStore()
	store.InitializeWith([]model.Mapping{
		{ID: "id-3", ShortCode: "ccc333", CreatedAt: base.Add(time.Minute)},
		{ID: "id-2", ShortCode: "bbb222", CreatedAt: base},
		{ID: "id-1", ShortCode: "aaa111", CreatedAt: base},
	})

	// Act
	snapshot := store.Snapshot()

	// Assert
	require.Len(t, snapshot, 3)
	assert.Equal(t, model.Code("aaa111"), snapshot[0].ShortCode)
	assert.Equal(t, model.Code("bbb222"), snapshot[1].ShortCode)
	assert.Equal(t, model.Code("ccc333"), snapshot[2].ShortCode)
}

// TestStore_SnapshotIsCopy проверяет что снимок не связан с хранилищем
func TestStore_SnapshotIsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	_, err := store.Insert(ctx, newMapping("abc123", "https://example.com"))
	require.NoError(t, err)

	snapshot := store.Snapshot()
	snapshot[0].URL = "https://changed.com"

	found, err := store.Find(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, model.URL("https://example.com"), found.URL)
}

// TestStore_Restore проверяет возврат к снимку, включая поиск по ID
func TestStore_Restore(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	kept, err := store.Insert(ctx, newMapping("abc123", "https://example.com"))
	require.NoError(t, err)
	snapshot := store.Snapshot()

	added, err := store.Insert(ctx, newMapping("new123", "https://example.com/new"))
	require.NoError(t, err)
	_, err = store.Delete(ctx, "abc123")
	require.NoError(t, err)

	store.Restore(snapshot)

	_, err = store.Find(ctx, "new123")
	assert.ErrorIs(t, err, model.ErrNotFound)
	_, err = store.Save(ctx, added)
	assert.ErrorIs(t, err, model.ErrNotFound)

	kept.URL = "https://updated.com"
	saved, err := store.Save(ctx, kept)
	require.NoError(t, err)
	assert.Equal(t, model.URL("https://updated.com"), saved.URL)
}
