package connecting

import (
	"encoding/base64"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// StateToken amarra o callback do OAuth ao usuário que iniciou o handshake.
// O nonce é consumido uma única vez e o IssuedAt limita a validade.
type StateToken struct {
	UserID   int64     `json:"user_id"`
	Nonce    string    `json:"nonce"`
	IssuedAt time.Time `json:"issued_at"`
}

// NewStateToken gera um state token para o usuário com nonce aleatório
func NewStateToken(userID int64) (*StateToken, error) {
	nonce, err := gonanoid.New(21)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar nonce do state token")
	}

	return &StateToken{
		UserID:   userID,
		Nonce:    nonce,
		IssuedAt: time.Now(),
	}, nil
}

// Encode serializa o token para o parâmetro state da URL de autorização
func (t *StateToken) Encode() (string, error) {
	raw, err := json.Marshal(t)
	if err != nil {
		return "", errors.Wrap(err, "erro ao serializar o state token")
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// Expired indica se o token passou da validade configurada
func (t *StateToken) Expired(ttl time.Duration) bool {
	return time.Since(t.IssuedAt) > ttl
}

// DecodeState reconstrói o token recebido no callback. Qualquer falha de
// decodificação é tratada como state inválido.
func DecodeState(state string) (*StateToken, error) {
	raw, err := base64.RawURLEncoding.DecodeString(state)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidState, "state não é base64 válido")
	}

	var token StateToken
	if err := json.Unmarshal(raw, &token); err != nil {
		return nil, errors.Wrap(ErrInvalidState, "state não é um token válido")
	}

	if token.UserID == 0 || token.Nonce == "" || token.IssuedAt.IsZero() {
		return nil, errors.Wrap(ErrInvalidState, "state com campos ausentes")
	}

	return &token, nil
}
