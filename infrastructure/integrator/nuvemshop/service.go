package nuvemshop

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/mentoria/commerce-sync-api/infrastructure/integrator"
	"github.com/mentoria/commerce-sync-api/infrastructure/integrator/nuvemshop/nuvemshopclient"
	"github.com/mentoria/commerce-sync-api/internal/config"
	"github.com/mentoria/commerce-sync-api/internal/domain"
	"github.com/mentoria/commerce-sync-api/pkg/ratelimit"
	"github.com/mentoria/commerce-sync-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Service struct {
	cfg    *config.Config
	client nuvemshopclient.Client
	pacer  *ratelimit.Pacer
}

func New(cfg *config.Config, client nuvemshopclient.Client, pacer *ratelimit.Pacer) integrator.Connector {
	return &Service{
		cfg:    cfg,
		client: client,
		pacer:  pacer,
	}
}

func (s *Service) Platform() domain.Platform {
	return domain.PlatformNuvemshop
}

// BeginAuth monta a URL de instalação do app. As credenciais do app vêm da
// configuração, então o blob pré-handshake fica vazio.
func (s *Service) BeginAuth(_ context.Context, _ integrator.AuthorizeParams, state string) (*integrator.BeginAuthResult, error) {
	if s.cfg.Nuvemshop.AppID == "" || s.cfg.Nuvemshop.ClientSecret == "" {
		return nil, errors.New("nuvemshop: app_id/client_secret não configurados")
	}

	query := url.Values{}
	query.Set("state", state)

	authURL := fmt.Sprintf("%s/apps/%s/authorize?%s",
		s.cfg.Nuvemshop.AuthBaseURL, s.cfg.Nuvemshop.AppID, query.Encode())

	return &integrator.BeginAuthResult{
		AuthURL:     authURL,
		Credentials: &domain.NuvemshopCredentials{},
	}, nil
}

// ExchangeCode troca o code pelo token permanente. O user_id da resposta é
// o identificador da loja usado em todas as chamadas subsequentes.
func (s *Service) ExchangeCode(ctx context.Context, _ domain.Credentials, code, _ string) (domain.Credentials, error) {
	token, err := s.client.GetAccessToken(ctx, code)
	if err != nil {
		return nil, err
	}

	if token.AccessToken == "" || token.UserID == 0 {
		return nil, errors.New("nuvemshop não devolveu access_token/user_id")
	}

	return &domain.NuvemshopCredentials{
		AccessToken: token.AccessToken,
		StoreID:     token.UserID,
	}, nil
}

// FetchOrders varre a listagem paginada por número de página até uma página
// vir menor que o tamanho pedido
func (s *Service) FetchOrders(ctx context.Context, creds domain.Credentials, since time.Time) ([]domain.RawOrder, error) {
	nuvemshopCreds, ok := creds.(*domain.NuvemshopCredentials)
	if !ok || !nuvemshopCreds.Connected() {
		return nil, errors.Wrap(domain.ErrInvalidCredentials, "nuvemshop: integração sem access_token")
	}

	pacerKey := fmt.Sprintf("nuvemshop:%d", nuvemshopCreds.StoreID)
	gap := time.Duration(s.cfg.Nuvemshop.PageDelayMs) * time.Millisecond

	orders := make([]domain.RawOrder, 0)

	for page := 1; page <= s.cfg.Sync.MaxPages; page++ {
		if err := s.pacer.Wait(ctx, pacerKey, gap); err != nil {
			return nil, err
		}

		result, err := s.client.GetOrderPage(ctx, nuvemshopclient.OrderPageParams{
			StoreID:      nuvemshopCreds.StoreID,
			AccessToken:  nuvemshopCreds.AccessToken,
			CreatedAtMin: since,
			PageSize:     s.cfg.Nuvemshop.PageSize,
			Page:         page,
		})
		if err != nil {
			return nil, err
		}

		for _, order := range result {
			createdAt, err := time.Parse(time.RFC3339, order.CreatedAt)
			if err != nil {
				logrus.WithField("order_id", order.ID).Warn("Pedido da Nuvemshop com created_at inválido, ignorando")
				continue
			}

			orders = append(orders, domain.RawOrder{
				ExternalID: fmt.Sprintf("%d", order.ID),
				CreatedAt:  createdAt,
				Total:      utils.ParseMoney(order.Total),
				Status:     order.Status,
				Cancelled:  order.Excluded(),
			})
		}

		if len(result) < s.cfg.Nuvemshop.PageSize {
			break
		}
	}

	logrus.WithFields(logrus.Fields{
		"store_id": nuvemshopCreds.StoreID,
		"orders":   len(orders),
	}).Info("Varredura de pedidos da Nuvemshop concluída")

	return orders, nil
}
