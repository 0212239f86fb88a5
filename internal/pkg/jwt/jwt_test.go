package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := New("test-secret", time.Hour)

	token, err := svc.GenerateToken(7, "admin")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateRejectsForeignAndExpiredTokens(t *testing.T) {
	token, err := New("secret-a", time.Hour).GenerateToken(1, "customer")
	require.NoError(t, err)

	_, err = New("secret-b", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := New("secret-a", -time.Minute).GenerateToken(1, "customer")
	require.NoError(t, err)
	_, err = New("secret-a", time.Hour).ValidateToken(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
