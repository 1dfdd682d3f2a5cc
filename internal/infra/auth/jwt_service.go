// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"agrinet/config"
	"agrinet/internal/domain/service"
)

const accessTokenType = "access"

// jwtService verifies access tokens signed with the shared HS256 key.
// Tokens are issued by the sign-in service; this process never mints them.
type jwtService struct {
	accessSecret []byte
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{accessSecret: []byte(cfg.SecretKey.Access)}, nil
}

// ValidateToken parses the token, checks signature and expiry, and requires an access token with a uuid subject.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.accessSecret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject claim")
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, errors.Wrap(err, "subject is not a user id")
	}

	tokenType, _ := claims["type"].(string)
	if tokenType != accessTokenType {
		return nil, errors.Errorf("unexpected token type %q", tokenType)
	}

	result := &service.Claims{
		UserID: userID,
		Roles:  stringSlice(claims["roles"]),
		Type:   tokenType,
	}
	if exp, err := claims.GetExpirationTime(); err == nil {
		result.ExpiresAt = exp
	}
	if iat, err := claims.GetIssuedAt(); err == nil {
		result.IssuedAt = iat
	}
	result.Subject = subject

	return result, nil
}

func stringSlice(raw any) []string {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}

	return out
}
