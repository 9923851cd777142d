package jwt_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"earnhub.backend/pkg/jwt"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(userID, "user@mail.com", "USER")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "user@mail.com", claims.Email)
	assert.Equal(t, "USER", claims.Role)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	svc := jwt.NewJWTService("test-secret", -time.Minute, -time.Minute)

	pair, err := svc.GenerateTokenPair(uuid.New(), "user@mail.com", "USER")
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	svc := jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
	other := jwt.NewJWTService("other-secret", 15*time.Minute, 24*time.Hour)

	pair, err := svc.GenerateTokenPair(uuid.New(), "user@mail.com", "USER")
	require.NoError(t, err)

	_, err = other.ValidateToken(pair.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestJWTService_ValidateToken_Garbage(t *testing.T) {
	svc := jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)

	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
