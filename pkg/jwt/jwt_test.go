package jwt

import (
	"testing"
	"time"

	"github.com/AlexCL0320/backend-banco-angeles/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(secret string) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        secret,
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: time.Hour,
	})
}

func TestGenerateAndValidate(t *testing.T) {
	s := newService("secret")
	subject := Subject{UserID: 42, Email: "a@x.com", RoleID: 2, IsStaff: true}

	token, tokenID, err := s.GenerateAccessToken(subject)
	require.NoError(t, err)
	require.NotEmpty(t, tokenID)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, int64(2), claims.RoleID)
	assert.True(t, claims.IsStaff)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)

	refresh, refreshID, err := s.GenerateRefreshToken(subject)
	require.NoError(t, err)
	assert.NotEqual(t, tokenID, refreshID)

	claims, err = s.ValidateToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
}

func TestValidateRejectsForeignSecret(t *testing.T) {
	token, _, err := newService("one").GenerateAccessToken(Subject{UserID: 1})
	require.NoError(t, err)

	_, err = newService("two").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpired(t *testing.T) {
	s := newService("secret")
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := s.GenerateAccessToken(Subject{UserID: 1})
	require.NoError(t, err)

	_, err = s.ValidateToken(token)
	assert.Error(t, err)
}
