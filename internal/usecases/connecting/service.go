package connecting

import (
	"context"
	"time"

	"github.com/mentoria/commerce-sync-api/infrastructure/integrator"
	"github.com/mentoria/commerce-sync-api/infrastructure/noncestore"
	"github.com/mentoria/commerce-sync-api/infrastructure/repository"
	"github.com/mentoria/commerce-sync-api/internal/config"
	"github.com/mentoria/commerce-sync-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// AuthorizeResult é a resposta do primeiro passo da conexão
type AuthorizeResult struct {
	// AuthURL é para onde o frontend redireciona o usuário. Vazia quando
	// a plataforma conecta direto, sem redirect.
	AuthURL string `json:"auth_url,omitempty"`
	// Connected indica que a integração já está pronta para sincronizar
	Connected bool `json:"connected"`
}

// Connector gerencia o ciclo de vida das conexões de plataforma
type Connector interface {
	Authorize(ctx context.Context, platform domain.Platform, params integrator.AuthorizeParams) (*AuthorizeResult, error)
	Callback(ctx context.Context, platform domain.Platform, code, state, identifier string) (*domain.IntegrationSummary, error)
	ListIntegrations(userID int64) ([]*domain.IntegrationSummary, error)
}

type Service struct {
	integrationRepo repository.IntegrationRepository
	connectors      integrator.Registry
	nonces          noncestore.Store
	cfg             *config.Config
}

func NewService(
	integrationRepo repository.IntegrationRepository,
	connectors integrator.Registry,
	nonces noncestore.Store,
	cfg *config.Config,
) Connector {
	return &Service{
		integrationRepo: integrationRepo,
		connectors:      connectors,
		nonces:          nonces,
		cfg:             cfg,
	}
}

// Authorize inicia o handshake: valida os campos da plataforma, persiste o
// blob pré-handshake no cofre como pending_oauth e devolve a URL de
// autorização. Plataformas de token direto já saem conectadas daqui.
func (s *Service) Authorize(ctx context.Context, platform domain.Platform, params integrator.AuthorizeParams) (*AuthorizeResult, error) {
	connector, err := s.connectors.Get(platform)
	if err != nil {
		return nil, err
	}

	token, err := NewStateToken(params.UserID)
	if err != nil {
		return nil, err
	}

	state, err := token.Encode()
	if err != nil {
		return nil, err
	}

	result, err := connector.BeginAuth(ctx, params, state)
	if err != nil {
		return nil, err
	}

	integration := &domain.Integration{
		UserID:      params.UserID,
		Platform:    platform,
		Credentials: result.Credentials,
		IsActive:    result.Connected,
		SyncStatus:  domain.SyncStatusPendingOAuth,
	}
	if result.Connected {
		integration.SyncStatus = domain.SyncStatusConnected
	}

	if err := s.integrationRepo.Upsert(integration); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":   params.UserID,
		"platform":  platform,
		"connected": result.Connected,
	}).Info("Conexão de integração iniciada")

	return &AuthorizeResult{
		AuthURL:   result.AuthURL,
		Connected: result.Connected,
	}, nil
}

// Callback conclui o handshake: valida e consome o state, troca o code por
// tokens e grava o blob conectado no cofre
func (s *Service) Callback(ctx context.Context, platform domain.Platform, code, state, identifier string) (*domain.IntegrationSummary, error) {
	connector, err := s.connectors.Get(platform)
	if err != nil {
		return nil, err
	}

	token, err := DecodeState(state)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(s.cfg.Vault.StateTTLMinutes) * time.Minute
	if token.Expired(ttl) {
		return nil, errors.Wrapf(ErrStateExpired, "emitido em %s", token.IssuedAt.Format(time.RFC3339))
	}

	fresh, err := s.nonces.Consume(ctx, token.Nonce)
	if err != nil {
		return nil, err
	}
	if !fresh {
		logrus.WithFields(logrus.Fields{
			"user_id":  token.UserID,
			"platform": platform,
		}).Warn("Callback com state token repetido rejeitado")
		return nil, ErrStateReplayed
	}

	integration, err := s.integrationRepo.GetByUserAndPlatform(token.UserID, platform)
	if err != nil {
		return nil, err
	}
	if integration == nil {
		return nil, errors.Wrapf(ErrIntegrationNotFound, "usuário %d, plataforma %s", token.UserID, platform)
	}

	creds, err := connector.ExchangeCode(ctx, integration.Credentials, code, identifier)
	if err != nil {
		return nil, errors.Wrap(ErrTokenExchangeFailed, err.Error())
	}

	integration.Credentials = creds
	integration.IsActive = true
	integration.SyncStatus = domain.SyncStatusConnected

	if err := s.integrationRepo.Upsert(integration); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  token.UserID,
		"platform": platform,
	}).Info("Integração conectada")

	return integration.Summary(), nil
}

// ListIntegrations devolve o estado das integrações do usuário, uma entrada
// por plataforma suportada
func (s *Service) ListIntegrations(userID int64) ([]*domain.IntegrationSummary, error) {
	summaries := make([]*domain.IntegrationSummary, 0, len(domain.Platforms))

	for _, platform := range domain.Platforms {
		integration, err := s.integrationRepo.GetByUserAndPlatform(userID, platform)
		if err != nil {
			return nil, err
		}

		if integration == nil {
			summaries = append(summaries, &domain.IntegrationSummary{
				Platform:   platform,
				IsActive:   false,
				SyncStatus: domain.SyncStatusPendingOAuth,
			})
			continue
		}

		summaries = append(summaries, integration.Summary())
	}

	return summaries, nil
}
