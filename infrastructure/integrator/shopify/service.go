package shopify

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/mentoria/commerce-sync-api/infrastructure/integrator"
	"github.com/mentoria/commerce-sync-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/mentoria/commerce-sync-api/internal/config"
	"github.com/mentoria/commerce-sync-api/internal/domain"
	"github.com/mentoria/commerce-sync-api/pkg/ratelimit"
	"github.com/mentoria/commerce-sync-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Service struct {
	cfg    *config.Config
	client shopifyclient.Client
	pacer  *ratelimit.Pacer
}

func New(cfg *config.Config, client shopifyclient.Client, pacer *ratelimit.Pacer) integrator.Connector {
	return &Service{
		cfg:    cfg,
		client: client,
		pacer:  pacer,
	}
}

func (s *Service) Platform() domain.Platform {
	return domain.PlatformShopify
}

// BeginAuth persiste o client_id/client_secret/shop_domain informados pelo
// usuário como blob pré-handshake e monta a URL de autorização da loja
func (s *Service) BeginAuth(_ context.Context, params integrator.AuthorizeParams, state string) (*integrator.BeginAuthResult, error) {
	creds := &domain.ShopifyCredentials{
		ClientID:     params.ClientID,
		ClientSecret: params.ClientSecret,
		ShopDomain:   shopifyclient.NormalizeShopDomain(params.ShopDomain),
	}
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	redirectURI := fmt.Sprintf("%s/v1/integrations/shopify/callback", s.cfg.App.BaseURL)

	query := url.Values{}
	query.Set("client_id", creds.ClientID)
	query.Set("scope", s.cfg.Shopify.Scopes)
	query.Set("redirect_uri", redirectURI)
	query.Set("state", state)

	authURL := fmt.Sprintf("https://%s/admin/oauth/authorize?%s", creds.ShopDomain, query.Encode())

	return &integrator.BeginAuthResult{
		AuthURL:     authURL,
		Credentials: creds,
	}, nil
}

// ExchangeCode troca o code pelo token permanente da loja. O blob
// pré-handshake carrega o client_id/client_secret necessários.
func (s *Service) ExchangeCode(ctx context.Context, creds domain.Credentials, code, identifier string) (domain.Credentials, error) {
	shopifyCreds, ok := creds.(*domain.ShopifyCredentials)
	if !ok {
		return nil, errors.Wrap(domain.ErrInvalidCredentials, "shopify: blob pré-handshake ausente")
	}

	shopDomain := shopifyCreds.ShopDomain
	if identifier != "" {
		// O redirect informa a loja; prevalece sobre o valor digitado
		shopDomain = shopifyclient.NormalizeShopDomain(identifier)
	}

	token, err := s.client.GetAccessToken(ctx, shopifyclient.TokenExchangeParams{
		ShopDomain:   shopDomain,
		ClientID:     shopifyCreds.ClientID,
		ClientSecret: shopifyCreds.ClientSecret,
		Code:         code,
	})
	if err != nil {
		return nil, err
	}

	if token.AccessToken == "" {
		return nil, errors.New("shopify não devolveu access_token")
	}

	return &domain.ShopifyCredentials{
		ClientID:     shopifyCreds.ClientID,
		ClientSecret: shopifyCreds.ClientSecret,
		ShopDomain:   shopDomain,
		AccessToken:  token.AccessToken,
		StoreURL:     "https://" + shopDomain,
	}, nil
}

// FetchOrders varre o orders.json com since_id até uma página vir menor
// que o tamanho pedido
func (s *Service) FetchOrders(ctx context.Context, creds domain.Credentials, since time.Time) ([]domain.RawOrder, error) {
	shopifyCreds, ok := creds.(*domain.ShopifyCredentials)
	if !ok || !shopifyCreds.Connected() {
		return nil, errors.Wrap(domain.ErrInvalidCredentials, "shopify: integração sem access_token")
	}

	pacerKey := "shopify:" + shopifyCreds.ShopDomain
	gap := time.Duration(s.cfg.Shopify.PageDelayMs) * time.Millisecond

	orders := make([]domain.RawOrder, 0)
	var sinceID int64

	for page := 0; page < s.cfg.Sync.MaxPages; page++ {
		if err := s.pacer.Wait(ctx, pacerKey, gap); err != nil {
			return nil, err
		}

		result, err := s.client.GetOrderPage(ctx, shopifyclient.OrderPageParams{
			ShopDomain:   shopifyCreds.ShopDomain,
			AccessToken:  shopifyCreds.AccessToken,
			CreatedAtMin: since,
			PageSize:     s.cfg.Shopify.PageSize,
			SinceID:      sinceID,
		})
		if err != nil {
			return nil, err
		}

		for _, order := range result {
			createdAt, err := time.Parse(time.RFC3339, order.CreatedAt)
			if err != nil {
				// Pedido malformado não derruba a varredura
				logrus.WithField("order_id", order.ID).Warn("Pedido do Shopify com created_at inválido, ignorando")
				continue
			}

			orders = append(orders, domain.RawOrder{
				ExternalID: fmt.Sprintf("%d", order.ID),
				CreatedAt:  createdAt,
				Total:      utils.ParseMoney(order.TotalPrice),
				Status:     order.FinancialStatus,
				Cancelled:  order.Excluded(),
			})
			if order.ID > sinceID {
				sinceID = order.ID
			}
		}

		if len(result) < s.cfg.Shopify.PageSize {
			break
		}
	}

	logrus.WithFields(logrus.Fields{
		"shop":   shopifyCreds.ShopDomain,
		"orders": len(orders),
	}).Info("Varredura de pedidos do Shopify concluída")

	return orders, nil
}
