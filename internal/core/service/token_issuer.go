package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/staffhub/employee-system/internal/core/domain"
)

// JWTIssuer mints and verifies HS256 session tokens carrying {id, role}.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl}
}

func (i *JWTIssuer) TTL() time.Duration { return i.ttl }

// Issue signs a token that expires i.ttl from now.
func (i *JWTIssuer) Issue(userID int64, roleName string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":   userID,
		"role": roleName,
		"iat":  now.Unix(),
		"exp":  now.Add(i.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Verify checks signature and expiry and extracts the identity claims.
func (i *JWTIssuer) Verify(token string) (domain.Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Claims{}, domain.ErrTokenExpired
		}
		return domain.Claims{}, domain.ErrTokenMalformed
	}
	if !tkn.Valid {
		return domain.Claims{}, domain.ErrTokenMalformed
	}

	id, ok := claims["id"].(float64)
	if !ok {
		return domain.Claims{}, domain.ErrTokenMalformed
	}
	role, ok := claims["role"].(string)
	if !ok {
		return domain.Claims{}, domain.ErrTokenMalformed
	}

	return domain.Claims{UserID: int64(id), Role: role}, nil
}

// RemainingLifetime reads the exp claim without requiring the token to still
// be valid, so an already-expired token reports 0. Blacklist entries are
// sized from this value rather than a fixed constant, keeping revocation
// correct if the configured token lifetime ever changes.
func (i *JWTIssuer) RemainingLifetime(token string) time.Duration {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}); err != nil {
		return 0
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0
	}
	remaining := time.Until(exp.Time)
	if remaining < 0 {
		return 0
	}
	return remaining
}
