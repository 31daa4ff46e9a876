package utils

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
)

// TokenClaims are the fields carried by an admin session token.
type TokenClaims struct {
	Subject  int
	Username string
	Role     string
}

// GenerateToken creates an HS256 token for the given admin that expires after duration.
func GenerateToken(secret []byte, c TokenClaims, now time.Time, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":      strconv.Itoa(c.Subject),
		"username": c.Username,
		"role":     c.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
