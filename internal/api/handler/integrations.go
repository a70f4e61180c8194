package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/mentoria/commerce-sync-api/infrastructure/integrator"
	"github.com/mentoria/commerce-sync-api/internal/domain"
	"github.com/mentoria/commerce-sync-api/internal/usecases/connecting"
	"github.com/mentoria/commerce-sync-api/internal/usecases/syncing"
	"github.com/mentoria/commerce-sync-api/pkg/apiErrors"
	"github.com/mentoria/commerce-sync-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

// AuthorizeRequest carrega os campos da plataforma informados pelo usuário
type AuthorizeRequest struct {
	ShopDomain   string `json:"shop_domain,omitempty"`
	ClientID     string `json:"client_id,omitempty"`
	ClientSecret string `json:"client_secret,omitempty"`
	APIToken     string `json:"api_token,omitempty"`
}

func platformFromRequest(w http.ResponseWriter, r *http.Request) (domain.Platform, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("platform")
	platform, ok := domain.ParsePlatform(raw)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrUnknownPlatform, "Plataforma não suportada: "+raw, nil)
		return "", false
	}
	return platform, true
}

// AuthorizeIntegration inicia a conexão de uma plataforma para o usuário da
// sessão
func AuthorizeIntegration(service connecting.Connector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrUnauthorized, "Sessão inválida", nil)
			return
		}

		platform, ok := platformFromRequest(w, r)
		if !ok {
			return
		}

		var req AuthorizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		result, err := service.Authorize(r.Context(), platform, integrator.AuthorizeParams{
			UserID:       claims.UserID,
			ShopDomain:   req.ShopDomain,
			ClientID:     req.ClientID,
			ClientSecret: req.ClientSecret,
			APIToken:     req.APIToken,
		})
		if err != nil {
			logrus.WithError(err).Error("Erro ao iniciar conexão de integração")
			writeConnectingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.WithError(err).Error("Erro ao enviar resposta de autorização")
		}
	}
}

// IntegrationCallback conclui o handshake de OAuth. Rota pública: a
// identidade vem do state token, não da sessão.
func IntegrationCallback(service connecting.Connector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		platform, ok := platformFromRequest(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		code := query.Get("code")
		state := query.Get("state")
		if code == "" || state == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetros code e state são obrigatórios", nil)
			return
		}

		// Cada plataforma manda o identificador da loja com um nome
		identifier := query.Get("shop_id")
		if identifier == "" {
			identifier = query.Get("shop")
		}
		if identifier == "" {
			identifier = query.Get("store_id")
		}

		summary, err := service.Callback(r.Context(), platform, code, state, identifier)
		if err != nil {
			logrus.WithError(err).Error("Erro ao concluir handshake de integração")
			writeConnectingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logrus.WithError(err).Error("Erro ao enviar resposta do callback")
		}
	}
}

// SyncIntegration dispara a sincronização da plataforma para o usuário da
// sessão
func SyncIntegration(service syncing.Syncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrUnauthorized, "Sessão inválida", nil)
			return
		}

		platform, ok := platformFromRequest(w, r)
		if !ok {
			return
		}

		summary, err := service.RunSync(r.Context(), claims.UserID, platform)
		if err != nil {
			logrus.WithError(err).Error("Erro ao sincronizar integração")
			writeSyncError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logrus.WithError(err).Error("Erro ao enviar resumo da sincronização")
		}
	}
}

// ListIntegrations devolve o estado das integrações do usuário da sessão
func ListIntegrations(service connecting.Connector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrUnauthorized, "Sessão inválida", nil)
			return
		}

		summaries, err := service.ListIntegrations(claims.UserID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar integrações")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar integrações", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summaries); err != nil {
			logrus.WithError(err).Error("Erro ao enviar lista de integrações")
		}
	}
}

func writeConnectingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownPlatform):
		apiErrors.WriteError(w, apiErrors.ErrUnknownPlatform, "Plataforma não suportada", nil)
	case errors.Is(err, domain.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, connecting.ErrInvalidState),
		errors.Is(err, connecting.ErrStateExpired),
		errors.Is(err, connecting.ErrStateReplayed):
		apiErrors.WriteError(w, apiErrors.ErrInvalidState, err.Error(), nil)
	case errors.Is(err, connecting.ErrIntegrationNotFound):
		apiErrors.WriteError(w, apiErrors.ErrIntegrationNotFound, "Integração não encontrada", nil)
	case errors.Is(err, connecting.ErrTokenExchangeFailed):
		apiErrors.WriteError(w, apiErrors.ErrTokenExchange, "Falha na troca do code por token", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar a conexão", nil)
	}
}

func writeSyncError(w http.ResponseWriter, err error) {
	var upstream *integrator.UpstreamError

	switch {
	case errors.Is(err, domain.ErrUnknownPlatform):
		apiErrors.WriteError(w, apiErrors.ErrUnknownPlatform, "Plataforma não suportada", nil)
	case errors.Is(err, syncing.ErrIntegrationNotFound):
		apiErrors.WriteError(w, apiErrors.ErrIntegrationNotFound, "Integração não encontrada", nil)
	case errors.Is(err, syncing.ErrIntegrationInactive):
		apiErrors.WriteError(w, apiErrors.ErrIntegrationInactive, "Integração não está conectada", nil)
	case errors.As(err, &upstream) && integrator.IsRateLimited(upstream):
		apiErrors.WriteError(w, apiErrors.ErrSyncRateLimited, "Plataforma limitou as requisições", nil)
	case errors.As(err, &upstream):
		apiErrors.WriteError(w, apiErrors.ErrSyncUpstream, "Plataforma respondeu com erro", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao sincronizar", nil)
	}
}
