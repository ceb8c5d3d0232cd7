package di

import (
	"context"
	"net/http"

	"salas/infras/kafka"
	"salas/infras/otel"
	"salas/infras/postgres"
	reservationService "salas/internal/domains/reservation/service"
	transportHTTP "salas/transport/http"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// App is the assembled service together with the resources it releases on shutdown.
type App struct {
	HTTP      *transportHTTP.HTTP
	DB        *postgres.Connection
	Redis     *goRedis.Client
	Otel      otel.Otel
	Publisher kafka.Client

	Reservations reservationService.Reservation
}

func (a *App) Serve() {
	a.HTTP.OnHealthCheck("postgres", a.DB.Ping)
	a.HTTP.OnHealthCheck("redis", func(ctx context.Context) error { return a.Redis.Ping(ctx).Err() })
	a.HTTP.OnShutdown(a.release)
	a.HTTP.Serve()
}

func (a *App) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	a.HTTP.ServeHTTP(writer, request)
}

func (a *App) release(ctx context.Context) {
	a.Reservations.Wait()

	if err := a.Publisher.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close kafka writer")
	}

	if err := a.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("failed to shut down tracer provider")
	}

	if err := a.Redis.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close redis client")
	}

	if err := a.DB.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close database connections")
	}
}
