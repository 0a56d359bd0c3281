package jwt

import (
	"testing"
	"time"

	"medical-directory-admin/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	})
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newService()
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "staff@example.com", "admin")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "staff@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestRefreshTokenType(t *testing.T) {
	svc := newService()
	token, _, err := svc.GenerateRefreshToken(uuid.New(), "staff@example.com", "admin")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
}

func TestValidateRejectsForeignSecret(t *testing.T) {
	token, _, err := newService().GenerateAccessToken(uuid.New(), "staff@example.com", "admin")
	require.NoError(t, err)

	other := NewJWTService(config.JWTConfig{Secret: "other", AccessExpiry: time.Minute})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: -time.Minute})
	token, _, err := svc.GenerateAccessToken(uuid.New(), "staff@example.com", "admin")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
