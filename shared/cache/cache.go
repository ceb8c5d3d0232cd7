package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"salas/infras/otel"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
	Nil                   = redis.Nil

	scanPage = 100
)

type RedisCache interface {
	Save(ctx context.Context, key string, value any, ttl int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, pattern string) error
	Incr(ctx context.Context, key string, window int) (int64, error)
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

func (cache *redisCache) start(ctx context.Context, op, key string) (context.Context, otel.Scope) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+"."+op)
	scope.SetAttribute(otelCacheKeyAttribute, key)

	return ctx, scope
}

// Clear deletes every key matching pattern, one SCAN page at a time.
func (cache *redisCache) Clear(ctx context.Context, pattern string) (err error) {
	ctx, scope := cache.start(ctx, "Clear", pattern)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var cursor uint64

	for {
		var keys []string

		keys, cursor, err = cache.client.Scan(ctx, cursor, pattern, scanPage).Result()
		if err != nil {
			return fmt.Errorf("failed to scan %q: %w", pattern, err)
		}

		if len(keys) > 0 {
			if err = cache.client.Unlink(ctx, keys...).Err(); err != nil {
				log.Error().Err(err).Str("pattern", pattern).Int("keys", len(keys)).Msg("failed to clear cache")

				return fmt.Errorf("failed to clear %q: %w", pattern, err)
			}
		}

		if cursor == 0 {
			return nil
		}
	}
}

func (cache *redisCache) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := cache.start(ctx, "Delete", key)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = cache.client.Del(ctx, key).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete cache entry")

		return fmt.Errorf("failed to delete %q: %w", key, err)
	}

	return nil
}

// Get loads key into value. A miss is reported as an error wrapping Nil and is not
// traced as a failure.
func (cache *redisCache) Get(ctx context.Context, key string, value any) (err error) {
	ctx, scope := cache.start(ctx, "Get", key)
	defer scope.End()

	raw, err := cache.client.Get(ctx, key).Bytes()
	if err != nil {
		scope.SetAttribute("cache.hit", false)

		return fmt.Errorf("failed to get %q: %w", key, err)
	}

	scope.SetAttribute("cache.hit", true)

	if err = decode(raw, value); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", key).Msg("dropping undecodable cache entry")

		return fmt.Errorf("failed to decode %q: %w", key, err)
	}

	return nil
}

// Save stores value under key for ttl seconds. Strings are stored as is, anything else as JSON.
func (cache *redisCache) Save(ctx context.Context, key string, value any, ttl int) (err error) {
	ctx, scope := cache.start(ctx, "Save", key)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	raw, err := encode(value)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}

	if err = cache.client.Set(ctx, key, raw, seconds(ttl)).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to save cache entry")

		return fmt.Errorf("failed to save %q: %w", key, err)
	}

	log.Debug().Str("key", key).Int("ttl", ttl).Msg("cache entry saved")

	return nil
}

// Incr bumps the counter at key. The first hit of a window sets its expiry to window seconds.
func (cache *redisCache) Incr(ctx context.Context, key string, window int) (count int64, err error) {
	ctx, scope := cache.start(ctx, "Incr", key)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var incr *redis.IntCmd

	_, err = cache.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, seconds(window))

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to increment %q: %w", key, err)
	}

	return incr.Val(), nil
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

func encode(value any) ([]byte, error) {
	if s, ok := value.(string); ok {
		return []byte(s), nil
	}

	return json.Marshal(value) //nolint:wrapcheck
}

func decode(raw []byte, value any) error {
	if s, ok := value.(*string); ok {
		*s = string(raw)

		return nil
	}

	return json.Unmarshal(raw, value) //nolint:wrapcheck
}
