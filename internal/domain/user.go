package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as claims do token emitido pelo serviço de autenticação da
// plataforma. Este subsistema apenas valida o token do chamador; emissão e
// gestão de usuários ficam fora dele.
type Claims struct {
	UserID    int64  `json:"user_id"`
	UserEmail string `json:"user_email"`
	jwt.RegisteredClaims
}
