// Package crypto protege o blob de credenciais em repouso com AES-256-GCM.
// A chave é derivada do segredo configurado via PBKDF2, de modo que o
// operador não precisa fornecer uma chave binária de 32 bytes.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"
)

const (
	keyLength  = 32
	iterations = 4096
)

// salt fixo por aplicação: a chave protege um único banco, não senhas de
// usuários individuais
var keySalt = []byte("commerce-sync-vault")

type Cipher struct {
	aead cipher.AEAD
}

// NewCipher deriva a chave do segredo configurado e prepara o AEAD
func NewCipher(secret string) (*Cipher, error) {
	if secret == "" {
		return nil, errors.New("segredo de criptografia do vault não configurado")
	}

	key := pbkdf2.Key([]byte(secret), keySalt, iterations, keyLength, sha256.New)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar cipher AES")
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar GCM")
	}

	return &Cipher{aead: aead}, nil
}

// Encrypt cifra o blob e devolve nonce+ciphertext em base64
func (c *Cipher) Encrypt(plaintext []byte) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", errors.Wrap(err, "erro ao gerar nonce")
	}

	ciphertext := c.aead.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// Decrypt decifra um valor produzido por Encrypt
func (c *Cipher) Decrypt(encoded string) ([]byte, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar ciphertext")
	}

	nonceSize := c.aead.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, errors.New("ciphertext curto demais")
	}

	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao decifrar credenciais")
	}

	return plaintext, nil
}
