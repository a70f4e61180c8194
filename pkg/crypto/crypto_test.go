package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCipher_RoundTrip(t *testing.T) {
	c, err := NewCipher("segredo-de-teste")
	require.NoError(t, err)

	plaintext := []byte(`{"access_token":"abc","shop_id":123}`)

	encoded, err := c.Encrypt(plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, string(plaintext), encoded)

	decoded, err := c.Decrypt(encoded)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decoded)
}

func TestCipher_ChaveErradaFalha(t *testing.T) {
	c1, err := NewCipher("segredo-um")
	require.NoError(t, err)
	c2, err := NewCipher("segredo-dois")
	require.NoError(t, err)

	encoded, err := c1.Encrypt([]byte("dados"))
	require.NoError(t, err)

	_, err = c2.Decrypt(encoded)
	assert.Error(t, err)
}

func TestCipher_SegredoVazio(t *testing.T) {
	_, err := NewCipher("")
	assert.Error(t, err)
}

func TestCipher_CiphertextCorrompido(t *testing.T) {
	c, err := NewCipher("segredo")
	require.NoError(t, err)

	_, err = c.Decrypt("!!!não-é-base64!!!")
	assert.Error(t, err)

	_, err = c.Decrypt("YWJj") // curto demais para conter o nonce
	assert.Error(t, err)
}
