package connecting

import "errors"

// Erros do ciclo de conexão de integrações
var (
	ErrInvalidState        = errors.New("state token inválido")
	ErrStateExpired        = errors.New("state token expirado")
	ErrStateReplayed       = errors.New("state token já utilizado")
	ErrIntegrationNotFound = errors.New("integração não encontrada")
	ErrTokenExchangeFailed = errors.New("falha na troca do code por token")
)
