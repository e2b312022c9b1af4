package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reservas/infras/otel"
	"reservas/shared/constant"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
	Nil                   = redis.Nil
)

type RedisCache interface {
	Save(ctx context.Context, key string, value any, duration int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, pattern string) error
	Incr(ctx context.Context, key string) (int64, error)
}

type redisCache struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisCache(client *redis.Client, ot otel.Otel) RedisCache {
	return &redisCache{
		client: client,
		otel:   ot,
	}
}

// Clear deletes every key matching pattern.
func (cache *redisCache) Clear(ctx context.Context, pattern string) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Clear")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, pattern)

	iter := cache.client.Scan(ctx, 0, pattern, 0).Iterator()

	for iter.Next(ctx) {
		key := iter.Val()
		if err = cache.client.Del(ctx, key).Err(); err != nil {
			log.Error().Err(err).Str("key", key).Str("RedisCache", "Clear").Msg("failed to del cache")

			return fmt.Errorf("failed to delete cache value: %w", err)
		}
	}

	if err = iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache keys: %w", err)
	}

	return nil
}

// Incr atomically increments the integer stored at key, starting from 0 when it is missing.
func (cache *redisCache) Incr(ctx context.Context, key string) (value int64, err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Incr")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	value, err = cache.client.Incr(ctx, key).Result()
	if err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisCache", "Incr").Msg("failed to incr cache")

		return 0, fmt.Errorf("failed to increment cache value: %w", err)
	}

	return value, nil
}

// Delete implements RedisCache.
func (cache *redisCache) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	if err = cache.client.Del(ctx, key).Err(); err != nil {
		log.Error().Str("key", key).Err(err).Str("RedisCache", "Delete").Msg("failed to del cache")

		return fmt.Errorf("failed to delete cache value: %w", err)
	}

	return nil
}

// Get reads key into value. A missing key yields an error wrapping Nil.
func (cache *redisCache) Get(ctx context.Context, key string, value any) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Get")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	cacheValue, err := cache.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, Nil) {
			scope.TraceError(err)
		}

		return fmt.Errorf("failed to get cache value: %w", err)
	}

	if v, ok := value.(*string); ok {
		*v = cacheValue

		return nil
	}

	if err = json.Unmarshal([]byte(cacheValue), value); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", key).Str("RedisCache", "Get").Msg("failed to unmarshal cache")

		return fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	return nil
}

// Save implements RedisCache.
func (cache *redisCache) Save(ctx context.Context, key string, value any, duration int) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Save")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	var strValue []byte
	switch v := value.(type) {
	case string:
		strValue = []byte(v)
	default:
		strValue, err = json.Marshal(v)

		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("key", key).Str("RedisCache", "Save").Msg("failed to marshal cache")

			return fmt.Errorf("failed to marshal cache value: %w", err)
		}
	}

	err = cache.client.Set(ctx, key, strValue, time.Second*time.Duration(duration)).Err()
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", key).Str("RedisCache", "Save").Msg("failed to set cache")

		return fmt.Errorf("failed to set cache value: %w", err)
	}

	log.Debug().Str("RedisCache", "Save").Str("key", key).Msg("success to set cache")

	return nil
}

// Remember returns the cached value for key, or calls load and stores its result for ttl seconds.
// Cache failures never fail the call; only load errors are returned.
func Remember[T any](ctx context.Context, cache RedisCache, key string, ttl int, load func(context.Context) (T, error)) (T, error) {
	var cached T

	err := cache.Get(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}

	if !errors.Is(err, Nil) {
		log.Warn().Err(err).Str("key", key).Msg("cache unavailable, loading from store")
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if err = cache.Save(ctx, key, value, ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to store loaded value in cache")
	}

	return value, nil
}

// GenerationKey names the counter bumped whenever the entries under prefix go stale. It lies
// outside prefix so clearing the entries keeps the counter.
func GenerationKey(prefix string) string {
	return "generation:" + prefix
}

// Generation returns the current generation of prefix. A missing counter is generation 0.
func Generation(ctx context.Context, cache RedisCache, prefix string) (int64, error) {
	var gen int64

	err := cache.Get(ctx, GenerationKey(prefix), &gen)
	if errors.Is(err, Nil) {
		return 0, nil
	}

	if err != nil {
		return 0, err
	}

	return gen, nil
}

// RememberGeneration is Remember under "<prefix>:g<generation>:<name>". A value loaded before
// Invalidate bumped the generation is saved under the old key and never served again. When the
// generation cannot be read the cache is bypassed.
func RememberGeneration[T any](ctx context.Context, cache RedisCache, prefix, name string, ttl int, load func(context.Context) (T, error)) (T, error) {
	gen, err := Generation(ctx, cache, prefix)
	if err != nil {
		log.Warn().Err(err).Str("prefix", prefix).Msg("cache generation unavailable, loading from store")

		return load(ctx)
	}

	return Remember(ctx, cache, fmt.Sprintf("%s:g%d:%s", prefix, gen, name), ttl, load)
}

// Invalidate bumps the generation of prefix and then deletes the entries stored under it.
func Invalidate(ctx context.Context, cache RedisCache, prefix string) error {
	_, incrErr := cache.Incr(ctx, GenerationKey(prefix))
	clearErr := cache.Clear(ctx, prefix+constant.Asterix)

	return errors.Join(incrErr, clearErr)
}

type noopCache struct{}

// NewNoopCache returns a cache that stores nothing. Every Get misses with Nil.
func NewNoopCache() RedisCache {
	return noopCache{}
}

func (noopCache) Save(context.Context, string, any, int) error { return nil }

func (noopCache) Get(context.Context, string, any) error { return Nil }

func (noopCache) Delete(context.Context, string) error { return nil }

func (noopCache) Clear(context.Context, string) error { return nil }

func (noopCache) Incr(context.Context, string) (int64, error) { return 0, nil }
