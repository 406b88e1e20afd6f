// Package auth consumes the hosted identity provider's credentials. It does
// not implement registration, refresh, or revocation; it only resolves the
// current owner from an access token (or runs unscoped in single-user mode).
package auth

import (
	"errors"
	"time"

	"github.com/SahilSawant11/mizu/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the registered claims plus the provider's user identifier.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// GenerateToken mints an HS256 token for userID. Used by tests and local
// development; real tokens come from the identity provider.
func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
	})

	return token.SignedString(secretKey)
}

// GetUserIDFromToken verifies tokenString against secretKey and returns the
// embedded user id. Expired tokens yield ErrTokenExpired; any other parse or
// signature failure yields ErrInvalidToken.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
