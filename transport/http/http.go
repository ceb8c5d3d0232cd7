package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"salas/config"
	"salas/shared/constant"
	"salas/transport/http/middleware"
	"salas/transport/http/response"
	"salas/transport/http/router"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "salas/docs" // swagger spec
)

const (
	readHeaderTimeout = 10 * time.Second
	defaultCORSMaxAge = 300
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

type HTTP struct {
	Config     *config.Config
	Router     router.Router
	App        middleware.AppMiddleware
	AuthRole   middleware.AuthRole
	state      atomic.Int32
	mux        *chi.Mux
	server     *http.Server
	setupOnce  sync.Once
	onShutdown []func(ctx context.Context)
	checks     map[string]func(ctx context.Context) error
}

func New(cfg *config.Config, r router.Router, app middleware.AppMiddleware, authRole middleware.AuthRole) *HTTP {
	return &HTTP{
		Config:   cfg,
		Router:   r,
		App:      app,
		AuthRole: authRole,
	}
}

// OnShutdown registers fn to run once the server has stopped accepting requests.
func (h *HTTP) OnShutdown(fn func(ctx context.Context)) {
	h.onShutdown = append(h.onShutdown, fn)
}

// OnHealthCheck adds a dependency check to /v1/health. A failing check reports the service unhealthy.
func (h *HTTP) OnHealthCheck(name string, check func(ctx context.Context) error) {
	if h.checks == nil {
		h.checks = map[string]func(ctx context.Context) error{}
	}

	h.checks[name] = check
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

func (h *HTTP) Serve() {
	h.setup()
	h.setupGracefulShutdown()

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

// ServeHTTP lets the whole API run behind another server, such as a serverless function.
func (h *HTTP) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	h.setup()
	h.mux.ServeHTTP(writer, request)
}

func (h *HTTP) setup() {
	h.setupOnce.Do(func() {
		h.setupRoutes()
		h.state.Store(int32(ServerStateReady))
	})
}

func (h *HTTP) setupRoutes() {
	h.mux = chi.NewRouter()

	h.mux.Use(chiMiddleware.RequestID)
	h.mux.Use(chiMiddleware.RealIP)
	h.mux.Use(chiMiddleware.Recoverer)
	h.mux.Use(h.corsHandler())
	h.mux.Use(h.App.Tracing)
	h.mux.Use(h.rejectWhenShuttingDown)

	h.mux.Get("/v1/health", h.health)
	h.mux.Get("/swagger/*", httpSwagger.WrapHandler)

	h.mux.Group(func(api chi.Router) {
		api.Use(h.App.RateLimit())
		api.Use(h.AuthRole.APIKey)
		api.Use(h.AuthRole.Auth)
		api.Use(h.AuthRole.RBAC)

		h.Router.SetupRoutes(api)
	})
}

func (h *HTTP) corsHandler() func(http.Handler) http.Handler {
	corsConfig := h.Config.App.CORS

	if !corsConfig.Enable {
		return func(next http.Handler) http.Handler { return next }
	}

	maxAge := corsConfig.MaxAgeSeconds
	if maxAge == 0 {
		maxAge = defaultCORSMaxAge
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   corsConfig.AllowedOrigins,
		AllowedMethods:   corsConfig.AllowedMethods,
		AllowedHeaders:   corsConfig.AllowedHeaders,
		ExposedHeaders:   []string{constant.RequestHeaderRateLimit, constant.RequestHeaderRateLimitRemaining, constant.RequestHeaderRequestID},
		AllowCredentials: corsConfig.AllowCredentials,
		MaxAge:           maxAge,
	})
}

// health reports liveness. Load balancers stop routing once it turns unavailable.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message
// @Failure 503 {object} response.Message
// @Router /v1/health [get]
func (h *HTTP) health(writer http.ResponseWriter, request *http.Request) {
	switch h.State() {
	case ServerStateReady:
		for name, check := range h.checks {
			if err := check(request.Context()); err != nil {
				log.Error().Err(err).Str("dependency", name).Msg("Health check failed")
				response.WithUnhealthy(writer)

				return
			}
		}

		response.WithMessage(writer, http.StatusOK, "OK")
	case ServerStateInGracePeriod:
		response.WithPreparingShutdown(writer)
	default:
		response.WithUnhealthy(writer)
	}
}

func (h *HTTP) rejectWhenShuttingDown(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if h.State() == ServerStateInCleanupPeriod {
			response.WithPreparingShutdown(writer)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	defer os.Exit(0)

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")
		h.shutdown(context.Background())

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.state.Store(int32(ServerStateInGracePeriod))

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.state.Store(int32(ServerStateInCleanupPeriod))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	h.shutdown(ctx)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

func (h *HTTP) shutdown(ctx context.Context) {
	if h.server != nil {
		if err := h.server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to shut down HTTP server")
		}
	}

	for _, fn := range h.onShutdown {
		fn(ctx)
	}
}
