package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"salas/config"
	"salas/infras/jwt"
	otelMocks "salas/infras/otel/mocks"
	"salas/permissions"
	"salas/shared/constant"
	"salas/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "salas"
	cfg.App.APIKey = "internal-key"
	cfg.JWT.AccessSecret = "secret"
	cfg.JWT.AccessExpireMin = 15

	return cfg
}

func newRouter(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()

	perms := permissions.Get()
	require.NotNil(t, perms)

	authRole := middleware.NewAuthRoleMiddleware(jwt.New(cfg), otelMocks.NewOtel(), perms, cfg)

	echoUser := func(w http.ResponseWriter, r *http.Request) {
		user, _ := r.Context().Value(constant.ContextKeyUserID).(string)
		_, _ = w.Write([]byte(user))
	}

	router := chi.NewRouter()
	router.Group(func(api chi.Router) {
		api.Use(authRole.APIKey)
		api.Use(authRole.Auth)
		api.Use(authRole.RBAC)

		api.Route("/v1", func(v1 chi.Router) {
			v1.Route("/rules", func(rules chi.Router) {
				rules.Get("/", echoUser)
				rules.Post("/", echoUser)
				rules.Patch("/", echoUser)
			})
			v1.Route("/availability", func(availability chi.Router) {
				availability.Get("/", echoUser)
				availability.Get("/rooms/{room_id}/blocks/{time_block_id}", echoUser)
			})
			v1.Route("/rooms", func(rooms chi.Router) {
				rooms.Get("/", echoUser)
				rooms.Get("/{id}", echoUser)
			})
			v1.Get("/time-blocks", echoUser)
			v1.Get("/reservations/mine", echoUser)
		})
	})

	return router
}

func token(t *testing.T, cfg *config.Config, role string) string {
	t.Helper()

	signed, err := jwt.New(cfg).GenerateAccessToken("user-1", "user@example.com", role)
	require.NoError(t, err)

	return "Bearer " + signed
}

func TestAuthRole(t *testing.T) {
	cfg := newConfig()
	expiredCfg := newConfig()
	expiredCfg.JWT.AccessExpireMin = -5

	tests := []struct {
		name     string
		method   string
		path     string
		header   map[string]string
		wantCode int
		wantBody string
	}{
		{name: "public endpoint without token", method: http.MethodGet, path: "/v1/rules/", wantCode: http.StatusOK},
		{name: "protected endpoint without token", method: http.MethodGet, path: "/v1/reservations/mine", wantCode: http.StatusUnauthorized},
		{
			name:     "malformed authorization header",
			method:   http.MethodGet,
			path:     "/v1/reservations/mine",
			header:   map[string]string{constant.RequestHeaderAuthorization: "Token abc"},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "expired token",
			method:   http.MethodGet,
			path:     "/v1/reservations/mine",
			header:   map[string]string{constant.RequestHeaderAuthorization: token(t, expiredCfg, constant.RoleStudent)},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "valid token reaches the handler with the user",
			method:   http.MethodGet,
			path:     "/v1/reservations/mine",
			header:   map[string]string{constant.RequestHeaderAuthorization: token(t, cfg, constant.RoleStudent)},
			wantCode: http.StatusOK,
			wantBody: "user-1",
		},
		{
			name:     "student cannot change rules",
			method:   http.MethodPatch,
			path:     "/v1/rules/",
			header:   map[string]string{constant.RequestHeaderAuthorization: token(t, cfg, constant.RoleStudent)},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "admin changes rules",
			method:   http.MethodPatch,
			path:     "/v1/rules/",
			header:   map[string]string{constant.RequestHeaderAuthorization: token(t, cfg, constant.RoleAdmin)},
			wantCode: http.StatusOK,
			wantBody: "user-1",
		},
		{
			name:     "internal api key acts as the system user",
			method:   http.MethodGet,
			path:     "/v1/reservations/mine",
			header:   map[string]string{constant.RequestHeaderAPIKey: "internal-key"},
			wantCode: http.StatusOK,
			wantBody: middleware.SystemUser,
		},
		{
			name:     "internal api key may change rules",
			method:   http.MethodPatch,
			path:     "/v1/rules/",
			header:   map[string]string{constant.RequestHeaderAPIKey: "internal-key"},
			wantCode: http.StatusOK,
			wantBody: middleware.SystemUser,
		},
		{
			name:     "wrong api key",
			method:   http.MethodGet,
			path:     "/v1/reservations/mine",
			header:   map[string]string{constant.RequestHeaderAPIKey: "guess"},
			wantCode: http.StatusForbidden,
		},
	}

	router := newRouter(t, cfg)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			for key, value := range tt.header {
				req.Header.Set(key, value)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestAuthRole_RouteForms(t *testing.T) {
	cfg := newConfig()
	router := newRouter(t, cfg)
	student := token(t, cfg, constant.RoleStudent)
	admin := token(t, cfg, constant.RoleAdmin)

	tests := []struct {
		name     string
		method   string
		path     string
		bearer   string
		wantCode int
	}{
		{name: "grid without token", method: http.MethodGet, path: "/v1/availability?date=2026-10-19", wantCode: http.StatusOK},
		{name: "grid with trailing slash", method: http.MethodGet, path: "/v1/availability/", wantCode: http.StatusOK},
		{
			name:     "slot state without token",
			method:   http.MethodGet,
			path:     "/v1/availability/rooms/7d1c1a52-1f1c-4a37-9a4e-2a9c1f0f7b11/blocks/0b9a4a1e-5d55-4b53-8f0e-1c2d3e4f5a6b",
			wantCode: http.StatusOK,
		},
		{name: "rooms without token", method: http.MethodGet, path: "/v1/rooms", wantCode: http.StatusOK},
		{name: "rooms with trailing slash", method: http.MethodGet, path: "/v1/rooms/", wantCode: http.StatusOK},
		{name: "time blocks without token", method: http.MethodGet, path: "/v1/time-blocks?day=monday", wantCode: http.StatusOK},
		{name: "rules without token", method: http.MethodGet, path: "/v1/rules", wantCode: http.StatusOK},
		{name: "student cannot create rules", method: http.MethodPost, path: "/v1/rules", bearer: student, wantCode: http.StatusForbidden},
		{name: "student cannot create rules with slash", method: http.MethodPost, path: "/v1/rules/", bearer: student, wantCode: http.StatusForbidden},
		{name: "student cannot patch rules", method: http.MethodPatch, path: "/v1/rules", bearer: student, wantCode: http.StatusForbidden},
		{name: "student cannot patch rules with slash", method: http.MethodPatch, path: "/v1/rules/", bearer: student, wantCode: http.StatusForbidden},
		{name: "anonymous cannot patch rules", method: http.MethodPatch, path: "/v1/rules", wantCode: http.StatusUnauthorized},
		{name: "admin patches rules", method: http.MethodPatch, path: "/v1/rules", bearer: admin, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.bearer != "" {
				req.Header.Set(constant.RequestHeaderAuthorization, tt.bearer)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
