// Package auth implements token issuing/parsing and password hashing for
// the portal server.
package auth

import (
	"errors"
	"time"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the authenticated identity inside a session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string      `json:"uid"`
	Role   common.Role `json:"role"`
}

// GenerateToken mints an HS256 session token for the given user.
func GenerateToken(userID string, role common.Role, issuer string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: userID,
		Role:   role,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken validates a session token and returns its claims. Expired
// tokens yield common.ErrTokenExpired; any other defect yields
// common.ErrInvalidToken.
func ParseToken(tokenString, issuer string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}
	if issuer != "" && claims.Issuer != issuer {
		return nil, common.ErrInvalidToken
	}
	if !claims.Role.Valid() {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
