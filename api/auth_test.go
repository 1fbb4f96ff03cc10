package api

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func Test_parseToken(t *testing.T) {
	handler := ApiHandler{JwtSigningSecret: "test-secret"}

	t.Run("valid token", func(t *testing.T) {
		exp := time.Now().Add(time.Hour).Unix()
		signed := signTestToken(t, "test-secret", jwt.MapClaims{
			"sub": "user-1",
			"exp": exp,
		})

		claims, err := handler.parseToken(signed)
		require.NoError(t, err)
		require.Equal(t, "user-1", claims.Subject)
		require.Equal(t, exp, claims.ExpiresAt)
	})

	t.Run("wrong secret", func(t *testing.T) {
		signed := signTestToken(t, "other-secret", jwt.MapClaims{
			"sub": "user-1",
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		_, err := handler.parseToken(signed)
		require.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		signed := signTestToken(t, "test-secret", jwt.MapClaims{
			"sub": "user-1",
			"exp": time.Now().Add(-time.Hour).Unix(),
		})

		_, err := handler.parseToken(signed)
		require.Error(t, err)
	})
}
