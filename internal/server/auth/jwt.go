// Package auth issues and verifies the bearer tokens handed to clients and
// hashes account passwords.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/common"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/roles"
	"github.com/golang-jwt/jwt/v5"
)

// Claims identifies the caller: the user, its role and the tenant SIRET its
// data is scoped to (empty for super_admin).
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	Siret  string `json:"siret,omitempty"`
}

// Identity is the decoded, validated content of a token.
type Identity struct {
	UserID string
	Role   roles.Role
	Siret  string
}

func GenerateToken(id Identity, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: id.UserID,
		Role:   id.Role.String(),
		Siret:  id.Siret,
	})

	return token.SignedString(secretKey)
}

// ParseToken validates signature, algorithm and expiry. Every failure is
// reported as common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, fmt.Errorf("%w: expired", common.ErrInvalidToken)
		}
		return Identity{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == "" {
		return Identity{}, common.ErrInvalidToken
	}

	role, err := roles.Parse(claims.Role)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	return Identity{UserID: claims.UserID, Role: role, Siret: claims.Siret}, nil
}
