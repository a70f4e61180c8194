// Package signer implementa as primitivas de assinatura de requisição
// exigidas pelas plataformas que não usam token bearer.
package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Sign calcula o HMAC-SHA256 da string canônica com a chave informada e
// devolve o digest em hexadecimal. É uma função pura: entradas idênticas
// produzem sempre a mesma assinatura.
func Sign(secret string, canonical string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(canonical))
	return hex.EncodeToString(mac.Sum(nil))
}

// ShopeeBaseString monta a string canônica da Shopee para chamadas de
// parceiro: {partner_id}{api_path}{timestamp}
func ShopeeBaseString(partnerID int64, apiPath string, timestamp int64) string {
	return fmt.Sprintf("%d%s%d", partnerID, apiPath, timestamp)
}

// SignShopee assina uma chamada de parceiro da Shopee
func SignShopee(partnerKey string, partnerID int64, apiPath string, timestamp int64) string {
	return Sign(partnerKey, ShopeeBaseString(partnerID, apiPath, timestamp))
}
