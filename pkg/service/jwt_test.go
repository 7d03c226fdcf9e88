package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
)

func newTestJWTService(secret string) JWTService {
	return NewJWTService(secret, time.Minute*15, time.Hour, zap.NewNop())
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService("test-secret")

	access, refresh, err := svc.GenerateTokens(42, constants.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, constants.RoleAdmin, claims.Role)
	assert.False(t, claims.IsRefreshToken)
	assert.NotEmpty(t, claims.ID, "jti должен быть заполнен")

	refreshClaims, err := svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.True(t, refreshClaims.IsRefreshToken)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	svc := newTestJWTService("secret-a")
	other := newTestJWTService("secret-b")

	access, _, err := other.GenerateTokens(1, constants.RoleUser)
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := newTestJWTService("secret")
	_, err := svc.ValidateToken("не.токен.вовсе")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := NewJWTService("secret", -time.Minute, time.Hour, zap.NewNop())
	access, _, err := svc.GenerateTokens(7, constants.RoleUser)
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	assert.Error(t, err, "просроченный токен должен отклоняться")
}
