package redis

import (
	"context"
	"net"
	"salas/config"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 5 * time.Second

func New(config *config.Config) *goRedis.Client {
	primary := config.Cache.Redis.Primary

	client := goRedis.NewClient(&goRedis.Options{
		Addr:     net.JoinHostPort(primary.Host, primary.Port),
		Password: primary.Password,
		DB:       primary.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("host", primary.Host).Msg("Failed to connect to Redis")
	}

	log.Info().
		Int("db", primary.DB).
		Str("host", primary.Host).
		Str("port", primary.Port).
		Msg("Connected to Redis")

	return client
}
