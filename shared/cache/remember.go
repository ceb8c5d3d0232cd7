package cache

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Remember returns the value cached at key. On a miss it calls load and, when load
// succeeds, caches the result for ttl seconds without making the caller wait.
// Cache failures only cost a reload.
func Remember[T any](ctx context.Context, cache RedisCache, key string, ttl int, load func(ctx context.Context) (T, error)) (T, error) {
	var cached T
	if err := cache.Get(ctx, key, &cached); err == nil {
		log.Debug().Str("cacheKey", key).Msg("cache hit")

		return cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	go func() {
		if err := cache.Save(context.WithoutCancel(ctx), key, value, ttl); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save cache")
		}
	}()

	return value, nil
}
