package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/avc-dev/shortener-stats/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMapping возвращает запись в том виде, в каком ее передает сервис
func newMapping(code model.Code, url model.URL) model.Mapping {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return model.Mapping{
		URL:       url,
		ShortCode: code,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// runBackendContract проверяет поведение, общее для всех движков хранения
func runBackendContract(t *testing.T, newBackend func(t *testing.T) Backend) {
	t.Helper()

	t.Run("insert assigns id and find returns record", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		backend := newBackend(t)
		mapping := newMapping("abc123", "https://example.com")

		// Act
		created, err := backend.Insert(ctx, mapping)

		// Assert
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, mapping.ShortCode, created.ShortCode)
		assert.Equal(t, mapping.URL, created.URL)
		assert.Zero(t, created.AccessCount)
		assert.True(t, mapping.CreatedAt.Equal(created.CreatedAt))

		found, err := backend.Find(ctx, "abc123")
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, created.URL, found.URL)
		assert.True(t, created.CreatedAt.Equal(found.CreatedAt))
		assert.True(t, created.UpdatedAt.Equal(found.UpdatedAt))
	})

	t.Run("exists", func(t *testing.T) {
		ctx := context.Background()
		backend := newBackend(t)
		_, err := backend.Insert(ctx, newMapping("abc123", "https://example.com"))
		require.NoError(t, err)

		exists, err := backend.Exists(ctx, "abc123")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = backend.Exists(ctx, "zzz999")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("duplicate code is rejected", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		backend := newBackend(t)
		_, err := backend.Insert(ctx, newMapping("abc123", "https://example.com"))
		require.NoError(t, err)

		// Act
		_, err = backend.Insert(ctx, newMapping("abc123", "https://other.com"))

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrShortCodeTaken)

		found, err := backend.Find(ctx, "abc123")
		require.NoError(t, err)
		assert.Equal(t, model.URL("https://example.com"), found.URL)
	})

	t.Run("find absent code", func(t *testing.T) {
		_, err := newBackend(t).Find(context.Background(), "absent")

		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("save updates url and keeps counter", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		backend := newBackend(t)
		created, err := backend.Insert(ctx, newMapping("abc123", "https://example.com"))
		require.NoError(t, err)
		_, err = backend.IncrementAccessCount(ctx, "abc123")
		require.NoError(t, err)

		// Сервис мог прочитать запись до инкремента
		stale := created
		stale.URL = "https://updated.com"
		stale.UpdatedAt = created.UpdatedAt.Add(time.Second)

		// Act
		saved, err := backend.Save(ctx, stale)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, model.URL("https://updated.com"), saved.URL)
		assert.Equal(t, created.ID, saved.ID)
		assert.Equal(t, created.ShortCode, saved.ShortCode)
		assert.True(t, created.CreatedAt.Equal(saved.CreatedAt))
		assert.True(t, stale.UpdatedAt.Equal(saved.UpdatedAt))
		assert.Equal(t, int64(1), saved.AccessCount)

		found, err := backend.Find(ctx, "abc123")
		require.NoError(t, err)
		assert.Equal(t, model.URL("https://updated.com"), found.URL)
		assert.Equal(t, int64(1), found.AccessCount)
	})

	t.Run("save unknown id", func(t *testing.T) {
		mapping := newMapping("abc123", "https://example.com")
		mapping.ID = uuid.NewString()

		_, err := newBackend(t).Save(context.Background(), mapping)

		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("increment access count", func(t *testing.T) {
		ctx := context.Background()
		backend := newBackend(t)
		_, err := backend.Insert(ctx, newMapping("abc123", "https://example.com"))
		require.NoError(t, err)

		for i := int64(1); i <= 3; i++ {
			mapping, err := backend.IncrementAccessCount(ctx, "abc123")
			require.NoError(t, err)
			assert.Equal(t, i, mapping.AccessCount)
		}

		found, err := backend.Find(ctx, "abc123")
		require.NoError(t, err)
		assert.Equal(t, int64(3), found.AccessCount)
	})

	t.Run("increment absent code", func(t *testing.T) {
		_, err := newBackend(t).IncrementAccessCount(context.Background(), "absent")

		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("concurrent increments are not lost", func(t *testing.T) {
		ctx := context.Background()
		backend := newBackend(t)
		_, err := backend.Insert(ctx, newMapping("abc123", "https://example.com"))
		require.NoError(t, err)

		const resolves = 20
		var wg sync.WaitGroup
		for range resolves {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := backend.IncrementAccessCount(ctx, "abc123")
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		found, err := backend.Find(ctx, "abc123")
		require.NoError(t, err)
		assert.Equal(t, int64(resolves), found.AccessCount)
	})

	t.Run("delete", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		backend := newBackend(t)
		_, err := backend.Insert(ctx, newMapping("abc123", "https://example.com"))
		require.NoError(t, err)

		// Act
		removed, err := backend.Delete(ctx, "abc123")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(1), removed)

		_, err = backend.Find(ctx, "abc123")
		assert.ErrorIs(t, err, model.ErrNotFound)
		exists, err := backend.Exists(ctx, "abc123")
		require.NoError(t, err)
		assert.False(t, exists)

		removed, err = backend.Delete(ctx, "abc123")
		require.NoError(t, err)
		assert.Zero(t, removed)
	})

	t.Run("code is free again after delete", func(t *testing.T) {
		ctx := context.Background()
		backend := newBackend(t)
		first, err := backend.Insert(ctx, newMapping("abc123", "https://example.com"))
		require.NoError(t, err)
		_, err = backend.Delete(ctx, "abc123")
		require.NoError(t, err)

		second, err := backend.Insert(ctx, newMapping("abc123", "https://other.com"))

		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
		assert.Zero(t, second.AccessCount)
	})
}
