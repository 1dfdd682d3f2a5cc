package auth

import (
	"testing"
	"time"

	"agrinet/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func accessClaims(userID uuid.UUID, roles []string, ttl time.Duration) jwt.MapClaims {
	now := time.Now()

	return jwt.MapClaims{
		"sub":   userID.String(),
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
		"type":  "access",
		"roles": roles,
	}
}

func TestJWTService_ValidateAccessToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(testSecret))
	require.NoError(t, err)

	userID := uuid.New()
	token := signToken(t, testSecret, accessClaims(userID, []string{"farmer", "expert"}, 15*time.Minute))

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{"farmer", "expert"}, claims.Roles)
	assert.Equal(t, "access", claims.Type)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestJWTService_RejectsInvalidTokens(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(testSecret))
	require.NoError(t, err)

	userID := uuid.New()
	refresh := accessClaims(userID, nil, time.Hour)
	refresh["type"] = "refresh"
	noExp := accessClaims(userID, nil, time.Hour)
	delete(noExp, "exp")
	badSubject := accessClaims(userID, nil, time.Hour)
	badSubject["sub"] = "not-a-uuid"

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{name: "wrong secret", token: signToken(t, "another-secret", accessClaims(userID, nil, time.Hour))},
		{name: "expired", token: signToken(t, testSecret, accessClaims(userID, nil, -time.Minute))},
		{name: "refresh token", token: signToken(t, testSecret, refresh)},
		{name: "missing expiry", token: signToken(t, testSecret, noExp)},
		{name: "subject not uuid", token: signToken(t, testSecret, badSubject)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(""))
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt access secret must be provided")
}
