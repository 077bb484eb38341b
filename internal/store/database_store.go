package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/shortener-stats/internal/model"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const mappingColumns = `id::text, url, short_code, created_at, updated_at, access_count`

// DatabaseStore хранит сопоставления в PostgreSQL
type DatabaseStore struct {
	pool *pgxpool.Pool
}

// NewDatabaseStore создает новый DatabaseStore
func NewDatabaseStore(pool *pgxpool.Pool) *DatabaseStore {
	return &DatabaseStore{
		pool: pool,
	}
}

func (ds *DatabaseStore) Exists(ctx context.Context, code model.Code) (bool, error) {
	var exists bool

	query := `
		SELECT EXISTS
		(SELECT 1 FROM short_urls WHERE short_code = $1)
	`

	if err := ds.pool.QueryRow(ctx, query, string(code)).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check code existence: %w", err)
	}

	return exists, nil
}

func (ds *DatabaseStore) Find(ctx context.Context, code model.Code) (model.Mapping, error) {
	query := `
		SELECT ` + mappingColumns + `
		FROM short_urls
		WHERE short_code = $1
	`

	mapping, err := scanMapping(ds.pool.QueryRow(ctx, query, string(code)))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Mapping{}, fmt.Errorf("code %s: %w", code, model.ErrNotFound)
	}
	if err != nil {
		return model.Mapping{}, fmt.Errorf("failed to read from database: %w", err)
	}

	return mapping, nil
}

// Insert вставляет запись, ID назначает база данных.
// Нарушение уникальности short_code возвращается как model.ErrShortCodeTaken.
func (ds *DatabaseStore) Insert(ctx context.Context, mapping model.Mapping) (model.Mapping, error) {
	query := `
		INSERT INTO short_urls (url, short_code, created_at, updated_at, access_count)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + mappingColumns

	created, err := scanMapping(ds.pool.QueryRow(ctx, query,
		string(mapping.URL),
		string(mapping.ShortCode),
		mapping.CreatedAt,
		mapping.UpdatedAt,
		mapping.AccessCount,
	))
	if isUniqueViolation(err) {
		return model.Mapping{}, fmt.Errorf("code %s: %w", mapping.ShortCode, model.ErrShortCodeTaken)
	}
	if err != nil {
		return model.Mapping{}, fmt.Errorf("failed to insert into database: %w", err)
	}

	return created, nil
}

// Save обновляет URL и время изменения по ID, счетчик обращений не перезаписывается
func (ds *DatabaseStore) Save(ctx context.Context, mapping model.Mapping) (model.Mapping, error) {
	query := `
		UPDATE short_urls
		SET url = $2, updated_at = $3
		WHERE id = $1
		RETURNING ` + mappingColumns

	saved, err := scanMapping(ds.pool.QueryRow(ctx, query, mapping.ID, string(mapping.URL), mapping.UpdatedAt))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Mapping{}, fmt.Errorf("id %s: %w", mapping.ID, model.ErrNotFound)
	}
	if err != nil {
		return model.Mapping{}, fmt.Errorf("failed to update database: %w", err)
	}

	return saved, nil
}

func (ds *DatabaseStore) Delete(ctx context.Context, code model.Code) (int64, error) {
	tag, err := ds.pool.Exec(ctx, `DELETE FROM short_urls WHERE short_code = $1`, string(code))
	if err != nil {
		return 0, fmt.Errorf("failed to delete from database: %w", err)
	}

	return tag.RowsAffected(), nil
}

// IncrementAccessCount увеличивает счетчик одним UPDATE, без потерь при конкурентных запросах
func (ds *DatabaseStore) IncrementAccessCount(ctx context.Context, code model.Code) (model.Mapping, error) {
	query := `
		UPDATE short_urls
		SET access_count = access_count + 1
		WHERE short_code = $1
		RETURNING ` + mappingColumns

	mapping, err := scanMapping(ds.pool.QueryRow(ctx, query, string(code)))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Mapping{}, fmt.Errorf("code %s: %w", code, model.ErrNotFound)
	}
	if err != nil {
		return model.Mapping{}, fmt.Errorf("failed to increment access count: %w", err)
	}

	return mapping, nil
}

func scanMapping(row pgx.Row) (model.Mapping, error) {
	var (
		mapping   model.Mapping
		url, code string
	)

	err := row.Scan(&mapping.ID, &url, &code, &mapping.CreatedAt, &mapping.UpdatedAt, &mapping.AccessCount)
	if err != nil {
		return model.Mapping{}, err
	}

	mapping.URL = model.URL(url)
	mapping.ShortCode = model.Code(code)
	mapping.CreatedAt = mapping.CreatedAt.UTC()
	mapping.UpdatedAt = mapping.UpdatedAt.UTC()

	return mapping, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
