package jwt_test

import (
	"salas/config"
	"salas/infras/jwt"
	"testing"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(secret string, expireMin int) *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "salas"
	cfg.JWT.AccessSecret = secret
	cfg.JWT.AccessExpireMin = expireMin

	return cfg
}

func TestValidateToken(t *testing.T) {
	service := jwt.New(newConfig("secret", 15))

	token, err := service.GenerateAccessToken("user-1", "ana@example.com", "student")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "student", claims.Role)
	assert.NotEmpty(t, claims.TokenID)
}

func TestValidateToken_Rejections(t *testing.T) {
	t.Run("expired", func(t *testing.T) {
		service := jwt.New(newConfig("secret", -5))

		token, err := service.GenerateAccessToken("user-1", "ana@example.com", "student")
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("other secret", func(t *testing.T) {
		token, err := jwt.New(newConfig("one", 15)).GenerateAccessToken("user-1", "", "student")
		require.NoError(t, err)

		_, err = jwt.New(newConfig("two", 15)).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("not an access token", func(t *testing.T) {
		claims := jwt.Claims{UserID: "user-1", Type: "refresh"}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = jwt.New(newConfig("secret", 15)).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidClaim)
	})

	t.Run("other signing method", func(t *testing.T) {
		claims := jwt.Claims{UserID: "user-1", Type: "access"}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = jwt.New(newConfig("secret", 15)).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := jwt.New(newConfig("secret", 15)).ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = jwt.ExtractTokenFromHeader("")
	assert.ErrorIs(t, err, jwt.ErrMissingToken)

	_, err = jwt.ExtractTokenFromHeader("Basic abc")
	assert.ErrorIs(t, err, jwt.ErrMalformedHeader)

	_, err = jwt.ExtractTokenFromHeader("Bearer ")
	assert.ErrorIs(t, err, jwt.ErrMalformedHeader)
}
