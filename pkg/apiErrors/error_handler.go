package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro padronizados devolvidos ao cliente
const (
	// Erros de autenticação (AUTH)
	ErrUnauthorized = "AUTH_001" // Chamador sem identidade válida
	ErrInvalidToken = "AUTH_002" // Token inválido ou expirado

	// Erros de validação (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de conexão de plataforma (CONN)
	ErrUnknownPlatform     = "CONN_001" // Plataforma não suportada
	ErrInvalidState        = "CONN_002" // State token inválido ou reutilizado
	ErrIntegrationNotFound = "CONN_003" // Integração inexistente para o usuário
	ErrTokenExchange       = "CONN_004" // Troca de code por token falhou
	ErrIntegrationInactive = "CONN_005" // Integração ainda não conectada

	// Erros de sincronização (SYNC)
	ErrSyncUpstream    = "SYNC_001" // Plataforma respondeu com erro
	ErrSyncRateLimited = "SYNC_002" // Limite de requisições da plataforma atingido

	// Erros do servidor (SRV)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrUnauthorized:        http.StatusUnauthorized,
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrUnknownPlatform:     http.StatusBadRequest,
	ErrInvalidState:        http.StatusBadRequest,
	ErrIntegrationNotFound: http.StatusNotFound,
	ErrTokenExchange:       http.StatusBadGateway,
	ErrIntegrationInactive: http.StatusConflict,
	ErrSyncUpstream:        http.StatusBadGateway,
	ErrSyncRateLimited:     http.StatusTooManyRequests,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
