package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/avc-dev/shortener-stats/internal/model"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	cacheKeyPrefix      = "mapping:"
	generationKeyPrefix = "mapping-gen:"
)

// Backend движок хранения сопоставлений
type Backend interface {
	Exists(ctx context.Context, code model.Code) (bool, error)
	Find(ctx context.Context, code model.Code) (model.Mapping, error)
	Insert(ctx context.Context, mapping model.Mapping) (model.Mapping, error)
	Save(ctx context.Context, mapping model.Mapping) (model.Mapping, error)
	Delete(ctx context.Context, code model.Code) (int64, error)
	IncrementAccessCount(ctx context.Context, code model.Code) (model.Mapping, error)
}

var errStaleGeneration = errors.New("cache generation changed")

var (
	_ Backend = (*Store)(nil)
	_ Backend = (*FileStore)(nil)
	_ Backend = (*DatabaseStore)(nil)
	_ Backend = (*SQLiteStore)(nil)
	_ Backend = (*CachedStore)(nil)
)

// CachedStore кэширует записи в Redis поверх основного хранилища (cache-aside).
// Источник истины всегда backend: изменения сначала пишутся в него, затем ключ удаляется из кэша.
// Каждое изменение увеличивает поколение кода, и кэш заполняется только если поколение
// не менялось с момента чтения из backend.
// Ошибки Redis не прерывают операцию, запрос уходит в backend.
type CachedStore struct {
	backend Backend
	client  *redis.Client
	ttl     time.Duration
	logger  *zap.Logger
}

// NewCachedStore создает кэширующий декоратор
func NewCachedStore(backend Backend, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedStore {
	return &CachedStore{
		backend: backend,
		client:  client,
		ttl:     ttl,
		logger:  logger,
	}
}

func (cs *CachedStore) Exists(ctx context.Context, code model.Code) (bool, error) {
	n, err := cs.client.Exists(ctx, cacheKey(code)).Result()
	if err != nil {
		cs.logger.Warn("failed to check cache", zap.String("code", string(code)), zap.Error(err))
	} else if n > 0 {
		return true, nil
	}

	return cs.backend.Exists(ctx, code)
}

func (cs *CachedStore) Find(ctx context.Context, code model.Code) (model.Mapping, error) {
	if mapping, ok := cs.get(ctx, code); ok {
		return mapping, nil
	}

	generation, genErr := cs.generation(ctx, code)

	mapping, err := cs.backend.Find(ctx, code)
	if err != nil {
		return model.Mapping{}, err
	}

	if genErr == nil {
		cs.fill(ctx, mapping, generation)
	}

	return mapping, nil
}

func (cs *CachedStore) Insert(ctx context.Context, mapping model.Mapping) (model.Mapping, error) {
	generation, genErr := cs.generation(ctx, mapping.ShortCode)

	created, err := cs.backend.Insert(ctx, mapping)
	if err != nil {
		return model.Mapping{}, err
	}

	if genErr == nil {
		cs.fill(ctx, created, generation)
	}

	return created, nil
}

func (cs *CachedStore) Save(ctx context.Context, mapping model.Mapping) (model.Mapping, error) {
	saved, err := cs.backend.Save(ctx, mapping)
	if err != nil {
		return model.Mapping{}, err
	}

	cs.evict(ctx, saved.ShortCode)

	return saved, nil
}

func (cs *CachedStore) Delete(ctx context.Context, code model.Code) (int64, error) {
	removed, err := cs.backend.Delete(ctx, code)
	if err != nil {
		return 0, err
	}

	cs.evict(ctx, code)

	return removed, nil
}

func (cs *CachedStore) IncrementAccessCount(ctx context.Context, code model.Code) (model.Mapping, error) {
	mapping, err := cs.backend.IncrementAccessCount(ctx, code)
	if err != nil {
		return model.Mapping{}, err
	}

	cs.evict(ctx, code)

	return mapping, nil
}

// Ping проверяет соединение с Redis
func (cs *CachedStore) Ping(ctx context.Context) error {
	return cs.client.Ping(ctx).Err()
}

// Close закрывает клиент Redis, backend закрывается отдельно
func (cs *CachedStore) Close() error {
	return cs.client.Close()
}

func (cs *CachedStore) get(ctx context.Context, code model.Code) (model.Mapping, bool) {
	data, err := cs.client.Get(ctx, cacheKey(code)).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.Mapping{}, false
	}
	if err != nil {
		cs.logger.Warn("failed to read cache", zap.String("code", string(code)), zap.Error(err))
		return model.Mapping{}, false
	}

	var entry model.MappingEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		cs.logger.Warn("failed to decode cached mapping", zap.String("code", string(code)), zap.Error(err))
		return model.Mapping{}, false
	}

	return entry.ToMapping(), true
}

// generation возвращает текущее поколение кода, отсутствие ключа означает ноль
func (cs *CachedStore) generation(ctx context.Context, code model.Code) (int64, error) {
	generation, err := parseGeneration(cs.client.Get(ctx, generationKey(code)))
	if err != nil {
		cs.logger.Warn("failed to read cache", zap.String("code", string(code)), zap.Error(err))
		return 0, err
	}

	return generation, nil
}

// fill кладет запись в кэш, если с момента чтения поколения ее никто не изменил
func (cs *CachedStore) fill(ctx context.Context, mapping model.Mapping, generation int64) {
	data, err := json.Marshal(mapping.ToEntry())
	if err != nil {
		cs.logger.Warn("failed to encode mapping for cache", zap.String("code", string(mapping.ShortCode)), zap.Error(err))
		return
	}

	genKey := generationKey(mapping.ShortCode)
	err = cs.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := parseGeneration(tx.Get(ctx, genKey))
		if err != nil {
			return err
		}
		if current != generation {
			return errStaleGeneration
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, cacheKey(mapping.ShortCode), data, cs.ttl)
			return nil
		})
		return err
	}, genKey)

	switch {
	case err == nil:
	case errors.Is(err, errStaleGeneration), errors.Is(err, redis.TxFailedErr):
		cs.logger.Debug("skip stale cache fill", zap.String("code", string(mapping.ShortCode)))
	default:
		cs.logger.Warn("failed to write cache", zap.String("code", string(mapping.ShortCode)), zap.Error(err))
	}
}

// evict удаляет запись из кэша и увеличивает поколение кода,
// чтобы заполнение по ранее прочитанным данным не прошло
func (cs *CachedStore) evict(ctx context.Context, code model.Code) {
	genKey := generationKey(code)
	_, err := cs.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey)
		pipe.Expire(ctx, genKey, cs.ttl)
		pipe.Del(ctx, cacheKey(code))
		return nil
	})
	if err != nil {
		cs.logger.Warn("failed to evict cache", zap.String("code", string(code)), zap.Error(err))
	}
}

func parseGeneration(cmd *redis.StringCmd) (int64, error) {
	generation, err := cmd.Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	return generation, err
}

func generationKey(code model.Code) string {
	return generationKeyPrefix + string(code)
}

func cacheKey(code model.Code) string {
	return cacheKeyPrefix + string(code)
}
