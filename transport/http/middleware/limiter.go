package middleware

import (
	"net"
	"net/http"
	"salas/shared"
	"salas/shared/constant"
	"salas/transport/http/response"
	"strconv"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
	unknownAgent      = "unknown"
)

// RateLimit counts requests per client in fixed windows. When the cache is unreachable
// requests pass through uncounted.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	limiter := a.config.App.RateLimiter

	return func(next http.Handler) http.Handler {
		if !limiter.Enable {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := shared.BuildCacheKey(cacheKeyRateLimit, a.getClientIP(r), a.getUA(r))

			count, err := a.cache.Incr(r.Context(), key, limiter.WindowSeconds)
			if err != nil {
				log.Warn().Err(err).Str("key", key).Msg("rate limiter unavailable")
				next.ServeHTTP(w, r)

				return
			}

			remaining := max(0, int64(limiter.MaxRequests)-count)

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(limiter.MaxRequests))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.FormatInt(remaining, 10))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(limiter.WindowSeconds))

			if count > int64(limiter.MaxRequests) {
				response.WithRequestLimitExceeded(w)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (a *appMiddleware) getUA(r *http.Request) string {
	if ua := r.Header.Get(constant.RequestHeaderUserAgent); ua != "" {
		return ua
	}

	return unknownAgent
}

// getClientIP reads RemoteAddr, which the RealIP middleware has already resolved
// from the proxy headers.
func (a *appMiddleware) getClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
