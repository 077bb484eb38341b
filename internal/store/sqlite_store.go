package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/avc-dev/shortener-stats/internal/model"
	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
)

// SQLiteStore хранит сопоставления в базе SQLite.
// Время хранится в микросекундах Unix.
type SQLiteStore struct {
	db *sql.DB
	l  *sync.Mutex // SQLite допускает одного писателя
}

// OpenSQLite открывает базу SQLite по пути к файлу
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("could not open SQLite database: %w", err)
	}

	return db, nil
}

// NewSQLiteStore создает хранилище поверх открытой базы с примененными миграциями
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{
		db: db,
		l:  new(sync.Mutex),
	}
}

func (s *SQLiteStore) Exists(ctx context.Context, code model.Code) (bool, error) {
	s.l.Lock()
	defer s.l.Unlock()

	var exists bool
	err := s.db.QueryRowContext(ctx, "select exists(select 1 from short_urls where short_code = ?)", string(code)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check code existence: %w", err)
	}

	return exists, nil
}

func (s *SQLiteStore) Find(ctx context.Context, code model.Code) (model.Mapping, error) {
	s.l.Lock()
	defer s.l.Unlock()

	return s.findBy(ctx, s.db, "short_code", string(code))
}

func (s *SQLiteStore) Insert(ctx context.Context, mapping model.Mapping) (model.Mapping, error) {
	s.l.Lock()
	defer s.l.Unlock()

	mapping.ID = uuid.NewString()

	_, err := s.db.ExecContext(ctx,
		"insert into short_urls (id, url, short_code, created_at, updated_at, access_count) values (?, ?, ?, ?, ?, ?)",
		mapping.ID,
		string(mapping.URL),
		string(mapping.ShortCode),
		mapping.CreatedAt.UnixMicro(),
		mapping.UpdatedAt.UnixMicro(),
		mapping.AccessCount,
	)
	if isSQLiteUniqueViolation(err) {
		return model.Mapping{}, fmt.Errorf("code %s: %w", mapping.ShortCode, model.ErrShortCodeTaken)
	}
	if err != nil {
		return model.Mapping{}, fmt.Errorf("error adding mapping to database: %w", err)
	}

	mapping.CreatedAt = fromUnixMicro(mapping.CreatedAt.UnixMicro())
	mapping.UpdatedAt = fromUnixMicro(mapping.UpdatedAt.UnixMicro())

	return mapping, nil
}

func (s *SQLiteStore) Save(ctx context.Context, mapping model.Mapping) (model.Mapping, error) {
	s.l.Lock()
	defer s.l.Unlock()

	var saved model.Mapping
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			"update short_urls set url = ?, updated_at = ? where id = ?",
			string(mapping.URL), mapping.UpdatedAt.UnixMicro(), mapping.ID,
		)
		if err != nil {
			return fmt.Errorf("error updating mapping in database: %w", err)
		}

		if err := requireAffected(res, "id "+mapping.ID); err != nil {
			return err
		}

		saved, err = s.findBy(ctx, tx, "id", mapping.ID)
		return err
	})
	if err != nil {
		return model.Mapping{}, err
	}

	return saved, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, code model.Code) (int64, error) {
	s.l.Lock()
	defer s.l.Unlock()

	res, err := s.db.ExecContext(ctx, "delete from short_urls where short_code = ?", string(code))
	if err != nil {
		return 0, fmt.Errorf("error deleting mapping from database: %w", err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error reading deleted rows count: %w", err)
	}

	return removed, nil
}

func (s *SQLiteStore) IncrementAccessCount(ctx context.Context, code model.Code) (model.Mapping, error) {
	s.l.Lock()
	defer s.l.Unlock()

	var mapping model.Mapping
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			"update short_urls set access_count = access_count + 1 where short_code = ?",
			string(code),
		)
		if err != nil {
			return fmt.Errorf("error incrementing access count in database: %w", err)
		}

		if err := requireAffected(res, "code "+string(code)); err != nil {
			return err
		}

		mapping, err = s.findBy(ctx, tx, "short_code", string(code))
		return err
	})
	if err != nil {
		return model.Mapping{}, err
	}

	return mapping, nil
}

// Ping проверяет соединение с базой
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close закрывает базу
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// findBy column подставляется только из констант внутри пакета
func (s *SQLiteStore) findBy(ctx context.Context, q queryRower, column, value string) (model.Mapping, error) {
	var (
		mapping              model.Mapping
		url, code            string
		createdAt, updatedAt int64
	)

	err := q.QueryRowContext(ctx,
		"select id, url, short_code, created_at, updated_at, access_count from short_urls where "+column+" = ?",
		value,
	).Scan(&mapping.ID, &url, &code, &createdAt, &updatedAt, &mapping.AccessCount)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Mapping{}, fmt.Errorf("%s %s: %w", column, value, model.ErrNotFound)
	}
	if err != nil {
		return model.Mapping{}, fmt.Errorf("error reading mapping from database: %w", err)
	}

	mapping.URL = model.URL(url)
	mapping.ShortCode = model.Code(code)
	mapping.CreatedAt = fromUnixMicro(createdAt)
	mapping.UpdatedAt = fromUnixMicro(updatedAt)

	return mapping, nil
}

func (s *SQLiteStore) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		return errors.Join(err, tx.Rollback())
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

func requireAffected(res sql.Result, key string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows count: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", key, model.ErrNotFound)
	}
	return nil
}

func fromUnixMicro(v int64) time.Time {
	return time.UnixMicro(v).UTC()
}

func isSQLiteUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
