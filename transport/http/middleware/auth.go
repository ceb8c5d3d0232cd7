package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"salas/config"
	"salas/infras/jwt"
	"salas/infras/otel"
	"salas/permissions"
	"salas/shared/constant"
	"salas/shared/failure"
	"salas/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// SystemUser is the identity requests authenticated by the internal API key act as.
const SystemUser = "system"

type internalCallKey struct{}

// Auth defines the interface for authentication middleware
type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

// Role defines the interface for role-based access control middleware
type Role interface {
	RBAC(http.Handler) http.Handler
}

// AuthRole combines all middleware interfaces
type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	access     *permissions.Table
	cfg        *config.Config
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, access *permissions.Table, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		access:     access,
		cfg:        cfg,
	}
}

// endpoint resolves the access entry of the route request will be dispatched to.
func (m *authRoleImpl) endpoint(request *http.Request) (permissions.Endpoint, bool) {
	if m.access == nil {
		return permissions.Endpoint{}, false
	}

	pattern := request.URL.Path
	if rctx := chi.RouteContext(request.Context()); rctx != nil && rctx.Routes != nil {
		if found := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path); found != "" {
			pattern = found
		}
	}

	return m.access.Lookup(request.Method, pattern), true
}

func internalCall(ctx context.Context) bool {
	internal, _ := ctx.Value(internalCallKey{}).(bool)

	return internal
}

func withIdentity(ctx context.Context, claims *jwt.Claims) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)

	return context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)
}

// bearer validates the Authorization header and returns the claims of its token.
func (m *authRoleImpl) bearer(header string) (*jwt.Claims, error) {
	if header == "" {
		return nil, failure.Unauthorized("Missing authorization header")
	}

	token, err := jwt.ExtractTokenFromHeader(header)
	if err != nil {
		return nil, failure.Unauthorized("Invalid authorization header format")
	}

	claims, err := m.jwtService.ValidateToken(token)

	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		return nil, failure.Unauthorized("Token has expired")
	case errors.Is(err, jwt.ErrInvalidToken):
		return nil, failure.Unauthorized("Invalid token")
	case errors.Is(err, jwt.ErrInvalidClaim):
		return nil, failure.Unauthorized("Invalid token claims")
	case err != nil:
		return nil, failure.Unauthorized("Token validation failed")
	case claims.UserID == "" || claims.Email == "":
		log.Warn().Str("user_id", claims.UserID).Msg("token without user id or email")

		return nil, failure.Unauthorized("Invalid token claims")
	}

	return claims, nil
}

// Auth puts the bearer token's identity on the request context. Public routes and
// internal calls pass without a token.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		endpoint, _ := m.endpoint(request)
		if internalCall(ctx) || endpoint.Public {
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{"http.route": endpoint.Path, "http.method": request.Method})

		claims, err := m.bearer(request.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		scope.SetAttribute("user.role", claims.Role)

		next.ServeHTTP(writer, request.WithContext(withIdentity(request.Context(), claims)))
	})
}

// RBAC admits the caller when the route is public or its role list holds the caller's
// role. It runs after Auth.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "rbac.middleware")
		defer scope.End()

		endpoint, loaded := m.endpoint(request)
		role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

		if loaded && (endpoint.Public || endpoint.Allows(role)) {
			next.ServeHTTP(writer, request)

			return
		}

		err := failure.Forbidden("Access denied")
		scope.TraceError(err)
		scope.SetAttributes(map[string]any{"user.role": role, "allowed_roles": endpoint.Roles})
		response.WithError(writer, err)
	})
}

// APIKey lets trusted services call in with the shared key instead of a user token.
// They act as SystemUser with the admin role. Requests without the header continue
// to Auth untouched.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		key := request.Header.Get(constant.RequestHeaderAPIKey)
		if key == "" {
			next.ServeHTTP(writer, request)

			return
		}

		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")
		defer scope.End()

		expected := m.cfg.App.APIKey
		if expected == "" || subtle.ConstantTimeCompare([]byte(key), []byte(expected)) != 1 {
			err := failure.Forbidden("Invalid API key")
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		ctx = withIdentity(ctx, &jwt.Claims{UserID: SystemUser, Role: constant.RoleAdmin})
		ctx = context.WithValue(ctx, internalCallKey{}, true)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
