package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/avc-dev/shortener-stats/internal/migrations"
	"github.com/avc-dev/shortener-stats/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupSQLite создает базу в t.TempDir() и применяет миграции
func setupSQLite(t *testing.T, path string) *SQLiteStore {
	t.Helper()

	// migrate закрывает свое соединение, поэтому миграции идут через отдельное
	migrationDB, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, migrations.NewMigrator(migrationDB, migrations.SQLite, zap.NewNop()).RunUp())

	db, err := OpenSQLite(path)
	require.NoError(t, err)

	store := NewSQLiteStore(db)
	t.Cleanup(func() {
		store.Close()
	})

	return store
}

func TestSQLiteStore_Contract(t *testing.T) {
	runBackendContract(t, func(t *testing.T) Backend {
		return setupSQLite(t, filepath.Join(t.TempDir(), "shortener.db"))
	})
}

func TestSQLiteStore_Ping(t *testing.T) {
	store := setupSQLite(t, filepath.Join(t.TempDir(), "shortener.db"))

	assert.NoError(t, store.Ping(context.Background()))
}

// TestSQLiteStore_Persistence проверяет что данные переживают переоткрытие базы
func TestSQLiteStore_Persistence(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "shortener.db")

	first := setupSQLite(t, path)
	created, err := first.Insert(ctx, newMapping("abc123", "https://example.com"))
	require.NoError(t, err)
	_, err = first.IncrementAccessCount(ctx, "abc123")
	require.NoError(t, err)
	require.NoError(t, first.Close())

	// повторные миграции на существующей базе ничего не меняют
	second := setupSQLite(t, path)

	found, err := second.Find(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, created.URL, found.URL)
	assert.True(t, created.CreatedAt.Equal(found.CreatedAt))
	assert.Equal(t, int64(1), found.AccessCount)
}

func TestSQLiteStore_ClosedDatabase(t *testing.T) {
	store := setupSQLite(t, filepath.Join(t.TempDir(), "shortener.db"))
	require.NoError(t, store.Close())

	_, err := store.Find(context.Background(), "abc123")

	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrNotFound)
}

// TestSQLiteStore_FailedTxRollsBack проверяет что неудачная транзакция откатывается и не держит запись
func TestSQLiteStore_FailedTxRollsBack(t *testing.T) {
	ctx := context.Background()
	store := setupSQLite(t, filepath.Join(t.TempDir(), "shortener.db"))
	created, err := store.Insert(ctx, newMapping("abc123", "https://example.com"))
	require.NoError(t, err)

	_, err = store.IncrementAccessCount(ctx, "absent")
	require.ErrorIs(t, err, model.ErrNotFound)
	assert.Equal(t, "code absent: mapping not found", err.Error())

	// после отката следующие записи проходят
	resolved, err := store.IncrementAccessCount(ctx, created.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resolved.AccessCount)

	_, err = store.Insert(ctx, newMapping("def456", "https://example.com/other"))
	require.NoError(t, err)
}
