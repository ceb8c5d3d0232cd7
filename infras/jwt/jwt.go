package jwt

import (
	"errors"
	"fmt"
	"salas/config"
	"salas/shared/timezone"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken    = errors.New("invalid token")
	ErrExpiredToken    = errors.New("token has expired")
	ErrInvalidClaim    = errors.New("invalid token claim")
	ErrMissingToken    = errors.New("authorization header is required")
	ErrMalformedHeader = errors.New("authorization header must start with 'Bearer '")
)

const (
	bearerPrefix    = "Bearer "
	tokenTypeAccess = "access"
)

// Claims carries the identity asserted by the token issuer.
type Claims struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Role    string `json:"role,omitempty"`
	TokenID string `json:"token_id"`
	Type    string `json:"type"`
	jwt.RegisteredClaims
}

// JWT validates bearer tokens at the request boundary.
type JWT interface {
	ValidateToken(tokenString string) (*Claims, error)
	GenerateAccessToken(userID, email, role string) (string, error)
}

type Service struct {
	secret []byte
	issuer string
	ttl    time.Duration
	parser *jwt.Parser
}

func New(cfg *config.Config) JWT {
	return &Service{
		secret: []byte(cfg.JWT.AccessSecret),
		issuer: cfg.App.Name,
		ttl:    time.Duration(cfg.JWT.AccessExpireMin) * time.Minute,
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}
}

// GenerateAccessToken signs an access token. Tokens are normally minted by the identity
// provider; this exists for local tooling and tests sharing the same secret.
func (s *Service) GenerateAccessToken(userID, email, role string) (string, error) {
	now := timezone.Now()
	id := uuid.NewString()

	claims := Claims{
		UserID:  userID,
		Email:   email,
		Role:    role,
		TokenID: id,
		Type:    tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Issuer:    s.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// ValidateToken checks the signature and time claims of an access token and returns its claims.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	_, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, ErrInvalidToken
	case claims.Type != tokenTypeAccess || claims.UserID == "":
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

// ExtractTokenFromHeader returns the token of a "Bearer <token>" Authorization header.
func ExtractTokenFromHeader(header string) (string, error) {
	if header == "" {
		return "", ErrMissingToken
	}

	token, found := strings.CutPrefix(header, bearerPrefix)
	if !found || token == "" {
		return "", ErrMalformedHeader
	}

	return token, nil
}
