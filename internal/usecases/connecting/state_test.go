package connecting

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateTokenRoundTrip(t *testing.T) {
	token, err := NewStateToken(42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), token.UserID)
	assert.NotEmpty(t, token.Nonce)

	encoded, err := token.Encode()
	require.NoError(t, err)

	decoded, err := DecodeState(encoded)
	require.NoError(t, err)
	assert.Equal(t, token.UserID, decoded.UserID)
	assert.Equal(t, token.Nonce, decoded.Nonce)
	assert.WithinDuration(t, token.IssuedAt, decoded.IssuedAt, time.Second)
}

func TestStateTokenNoncesAreUnique(t *testing.T) {
	first, err := NewStateToken(1)
	require.NoError(t, err)
	second, err := NewStateToken(1)
	require.NoError(t, err)

	assert.NotEqual(t, first.Nonce, second.Nonce)
}

func TestDecodeStateRejectsGarbage(t *testing.T) {
	tests := []struct {
		name  string
		state string
	}{
		{name: "Vazio", state: ""},
		{name: "Não é base64", state: "%%%inválido%%%"},
		{name: "Base64 de lixo", state: base64.RawURLEncoding.EncodeToString([]byte("não é json"))},
		{name: "JSON sem campos", state: base64.RawURLEncoding.EncodeToString([]byte("{}"))},
		{name: "Sem nonce", state: base64.RawURLEncoding.EncodeToString([]byte(`{"user_id":1,"issued_at":"2026-08-01T00:00:00Z"}`))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeState(tt.state)
			assert.ErrorIs(t, err, ErrInvalidState)
		})
	}
}

func TestStateTokenExpiry(t *testing.T) {
	token := &StateToken{
		UserID:   1,
		Nonce:    "abc",
		IssuedAt: time.Now().Add(-11 * time.Minute),
	}

	assert.True(t, token.Expired(10*time.Minute))
	assert.False(t, token.Expired(20*time.Minute))
}
