package middleware

import (
	"fmt"
	"net/http"
	"salas/config"
	"salas/infras/otel"
	"salas/shared/cache"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	otelGlobal "go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

// Tracing opens the request span every handler scope nests under, continuing the
// caller's trace when the request carries one.
func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parent := otelGlobal.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))

		ctx, scope := a.otel.NewScope(parent, otelHTTPScopeName, fmt.Sprintf("%s %s", r.Method, r.URL.Path))
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       r.URL.Path,
			"http.method":     r.Method,
			"http.user_agent": a.getUA(r),
			"http.host":       r.Host,
			"http.source":     a.getClientIP(r),
			"http.request_id": chiMiddleware.GetReqID(r.Context()),
		})

		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r.WithContext(ctx))

		attributes := map[string]any{
			"http.status_code": ww.Status(),
		}

		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			attributes["http.route"] = rctx.RoutePattern()
		}

		scope.SetAttributes(attributes)

		if ww.Status() >= http.StatusInternalServerError {
			scope.TraceError(fmt.Errorf("%s %s: %s", r.Method, r.URL.Path, http.StatusText(ww.Status())))
		}
	})
}
