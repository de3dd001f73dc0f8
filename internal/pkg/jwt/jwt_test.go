package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "1h")

	token, expiresAt, err := svc.GenerateAccessToken("user-1", "session-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), expiresAt, 5)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)
	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)

	userID, sessionID, err := Claims(claims)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "session-1", sessionID)
}

func TestGenerateAccessToken_InvalidDuration(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "forever")

	_, _, err := svc.GenerateAccessToken("user-1", "session-1")
	assert.Error(t, err)
}

func TestDecode_WrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", "1h")
	verifier := NewJWTService("secret-b", "1h")

	token, _, err := issuer.GenerateAccessToken("user-1", "session-1")
	require.NoError(t, err)

	_, err = verifier.JWTAuth().Decode(token)
	assert.Error(t, err)
}

func TestClaims(t *testing.T) {
	tests := []struct {
		name   string
		claims map[string]interface{}
	}{
		{"missing type", map[string]interface{}{"user_id": "u", "sid": "s"}},
		{"refresh type", map[string]interface{}{"user_id": "u", "sid": "s", "type": "refresh"}},
		{"missing user", map[string]interface{}{"sid": "s", "type": "access"}},
		{"missing session", map[string]interface{}{"user_id": "u", "type": "access"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Claims(tt.claims)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
