package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed schema
var migrationFiles embed.FS

// Dialect определяет набор миграций и драйвер базы данных
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite3"
)

// Migrator управляет миграциями базы данных
type Migrator struct {
	db      *sql.DB
	dialect Dialect
	logger  *zap.Logger
}

// NewMigrator создает новый экземпляр migrator.
// После RunUp и GetVersion переданный *sql.DB закрыт драйвером migrate,
// поэтому для миграций нужно отдельное соединение.
func NewMigrator(db *sql.DB, dialect Dialect, logger *zap.Logger) *Migrator {
	return &Migrator{
		db:      db,
		dialect: dialect,
		logger:  logger,
	}
}

// RunUp применяет все миграции вверх
func (m *Migrator) RunUp() error {
	m.logger.Info("Starting database migrations", zap.String("dialect", string(m.dialect)))

	migrateInstance, err := m.newInstance()
	if err != nil {
		return err
	}
	defer migrateInstance.Close()

	err = migrateInstance.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		m.logger.Info("No migrations to apply")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	m.logger.Info("Migrations applied successfully")

	return nil
}

// GetVersion возвращает текущую версию миграций
func (m *Migrator) GetVersion() (uint, bool, error) {
	migrateInstance, err := m.newInstance()
	if err != nil {
		return 0, false, err
	}
	defer migrateInstance.Close()

	return migrateInstance.Version()
}

// newInstance собирает migrate поверх embed файлов нужного диалекта
func (m *Migrator) newInstance() (*migrate.Migrate, error) {
	source, err := iofs.New(migrationFiles, "schema/"+string(m.dialect))
	if err != nil {
		return nil, fmt.Errorf("failed to create migration source: %w", err)
	}

	driver, err := m.newDriver()
	if err != nil {
		return nil, err
	}

	migrateInstance, err := migrate.NewWithInstance("iofs", source, string(m.dialect), driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return migrateInstance, nil
}

func (m *Migrator) newDriver() (database.Driver, error) {
	var (
		driver database.Driver
		err    error
	)

	switch m.dialect {
	case Postgres:
		driver, err = postgres.WithInstance(m.db, &postgres.Config{})
	case SQLite:
		driver, err = sqlite3.WithInstance(m.db, &sqlite3.Config{})
	default:
		return nil, fmt.Errorf("unsupported migration dialect: %s", m.dialect)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s driver: %w", m.dialect, err)
	}

	return driver, nil
}
