package syncing

import "errors"

// Erros do ciclo de sincronização
var (
	ErrIntegrationNotFound = errors.New("integração não encontrada")
	ErrIntegrationInactive = errors.New("integração não está conectada")
)
