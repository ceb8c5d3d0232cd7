package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	otelMocks "salas/infras/otel/mocks"
	cacheMocks "salas/shared/cache/mocks"
	"salas/shared/constant"
	"salas/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAppMiddleware_RateLimit(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	tests := []struct {
		name          string
		enabled       bool
		count         int64
		incrErr       error
		wantCode      int
		wantRemaining string
	}{
		{name: "disabled", wantCode: http.StatusOK},
		{name: "first request", enabled: true, count: 1, wantCode: http.StatusOK, wantRemaining: "2"},
		{name: "last allowed request", enabled: true, count: 3, wantCode: http.StatusOK, wantRemaining: "0"},
		{name: "over the limit", enabled: true, count: 4, wantCode: http.StatusTooManyRequests, wantRemaining: "0"},
		{name: "cache down lets the request through", enabled: true, incrErr: errors.New("connection refused"), wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cache := cacheMocks.NewMockRedisCache(ctrl)

			cfg := newConfig()
			cfg.App.RateLimiter.Enable = tt.enabled
			cfg.App.RateLimiter.MaxRequests = 3
			cfg.App.RateLimiter.WindowSeconds = 60

			if tt.enabled {
				cache.EXPECT().Incr(gomock.Any(), "limiter:10.0.0.7:curl/8.0", 60).Return(tt.count, tt.incrErr)
			}

			handler := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, cache).RateLimit()(ok)

			req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
			req.RemoteAddr = "10.0.0.7:51234"
			req.Header.Set(constant.RequestHeaderUserAgent, "curl/8.0")

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantRemaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}
