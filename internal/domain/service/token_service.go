package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the claims carried by access tokens.
type Claims struct {
	UserID uuid.UUID
	Roles  []string
	Type   string
	jwt.RegisteredClaims
}

// TokenService validates access tokens issued by the sign-in service.
type TokenService interface {
	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
