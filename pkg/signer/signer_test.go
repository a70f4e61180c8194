package signer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSign_VetorPublicado(t *testing.T) {
	// Vetor de teste 2 da RFC 4231 (HMAC-SHA256)
	digest := Sign("Jefe", "what do ya want for nothing?")
	assert.Equal(t, "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843", digest)
}

func TestSign_Deterministico(t *testing.T) {
	first := Sign("partner_key", "1234/api/v2/shop/auth_partner1700000000")
	second := Sign("partner_key", "1234/api/v2/shop/auth_partner1700000000")
	assert.Equal(t, first, second)

	other := Sign("partner_key", "1234/api/v2/shop/auth_partner1700000001")
	assert.NotEqual(t, first, other)
}

func TestShopeeBaseString(t *testing.T) {
	base := ShopeeBaseString(2007044, "/api/v2/auth/token/get", 1700000000)
	assert.Equal(t, "2007044/api/v2/auth/token/get1700000000", base)
}

func TestSignShopee_MesmaFormulaParaPaths(t *testing.T) {
	// authorize e token/get usam a mesma fórmula, mudando apenas o path
	auth := SignShopee("key", 1, "/api/v2/shop/auth_partner", 10)
	token := SignShopee("key", 1, "/api/v2/auth/token/get", 10)
	assert.NotEqual(t, auth, token)
	assert.Equal(t, Sign("key", "1/api/v2/shop/auth_partner10"), auth)
}
