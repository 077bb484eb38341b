package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func openTestDB(t *testing.T, path string) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", "file:"+path)
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func TestMigrator_RunUp(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "migrations.db")
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	// Act
	err := NewMigrator(openTestDB(t, path), SQLite, logger).RunUp()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("Migrations applied successfully").Len())

	version, dirty, err := NewMigrator(openTestDB(t, path), SQLite, zap.NewNop()).GetVersion()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)

	// таблица создана со всеми колонками
	db := openTestDB(t, path)
	_, err = db.Exec(
		"insert into short_urls (id, url, short_code, created_at, updated_at, access_count) values (?, ?, ?, ?, ?, ?)",
		"id-1", "https://example.com", "abc123", 1, 1, 0,
	)
	require.NoError(t, err)

	// short_code уникален
	_, err = db.Exec(
		"insert into short_urls (id, url, short_code, created_at, updated_at, access_count) values (?, ?, ?, ?, ?, ?)",
		"id-2", "https://other.com", "abc123", 1, 1, 0,
	)
	assert.Error(t, err)
}

// TestMigrator_RunUpTwice проверяет что повторный запуск не считается ошибкой
func TestMigrator_RunUpTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "migrations.db")
	core, logs := observer.New(zapcore.InfoLevel)

	require.NoError(t, NewMigrator(openTestDB(t, path), SQLite, zap.NewNop()).RunUp())
	require.NoError(t, NewMigrator(openTestDB(t, path), SQLite, zap.New(core)).RunUp())

	assert.Equal(t, 1, logs.FilterMessage("No migrations to apply").Len())
}

func TestMigrator_Constraints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "migrations.db")
	require.NoError(t, NewMigrator(openTestDB(t, path), SQLite, zap.NewNop()).RunUp())
	db := openTestDB(t, path)

	tests := []struct {
		name      string
		updatedAt int64
		count     int64
	}{
		{name: "updated before created", updatedAt: 5, count: 0},
		{name: "negative counter", updatedAt: 10, count: -1},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := db.Exec(
				"insert into short_urls (id, url, short_code, created_at, updated_at, access_count) values (?, ?, ?, ?, ?, ?)",
				tt.name, "https://example.com", "code0"+string(rune('0'+i)), 10, tt.updatedAt, tt.count,
			)

			assert.Error(t, err)
		})
	}
}

func TestMigrator_UnsupportedDialect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "migrations.db")

	err := NewMigrator(openTestDB(t, path), Dialect("mysql"), zap.NewNop()).RunUp()

	assert.Error(t, err)
}
