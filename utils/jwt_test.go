package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseHS256(secret []byte, token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	return claims, err
}

func TestGenerateToken_Claims(t *testing.T) {
	secret := []byte("test-secret")
	now := time.Now()
	token, err := GenerateToken(secret, TokenClaims{Subject: 1, Username: "admin", Role: "super_admin"}, now, time.Hour)
	require.NoError(t, err)

	claims, err := parseHS256(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "1", claims["sub"])
	assert.Equal(t, "admin", claims["username"])
	assert.Equal(t, "super_admin", claims["role"])
	assert.Equal(t, float64(now.Add(time.Hour).Unix()), claims["exp"])
}

func TestGenerateToken_WrongSecretAndExpiry(t *testing.T) {
	token, err := GenerateToken([]byte("a"), TokenClaims{Subject: 1}, time.Now(), time.Hour)
	require.NoError(t, err)
	_, err = parseHS256([]byte("b"), token)
	assert.Error(t, err)

	expired, err := GenerateToken([]byte("a"), TokenClaims{Subject: 1}, time.Now().Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)
	_, err = parseHS256([]byte("a"), expired)
	assert.Error(t, err)
}
