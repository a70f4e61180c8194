package shopee

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/mentoria/commerce-sync-api/infrastructure/integrator"
	shopeedomain "github.com/mentoria/commerce-sync-api/infrastructure/integrator/shopee/domain"
	"github.com/mentoria/commerce-sync-api/infrastructure/integrator/shopee/shopeeclient"
	"github.com/mentoria/commerce-sync-api/internal/config"
	"github.com/mentoria/commerce-sync-api/internal/domain"
	"github.com/mentoria/commerce-sync-api/pkg/ratelimit"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Service struct {
	cfg    *config.Config
	client shopeeclient.Client
	pacer  *ratelimit.Pacer
}

func New(cfg *config.Config, client shopeeclient.Client, pacer *ratelimit.Pacer) integrator.Connector {
	return &Service{
		cfg:    cfg,
		client: client,
		pacer:  pacer,
	}
}

func (s *Service) Platform() domain.Platform {
	return domain.PlatformShopee
}

// BeginAuth monta a URL de auth_partner assinada. A Shopee não precisa de
// campos do usuário: as credenciais de parceiro vêm da configuração.
func (s *Service) BeginAuth(_ context.Context, _ integrator.AuthorizeParams, state string) (*integrator.BeginAuthResult, error) {
	if s.cfg.Shopee.PartnerID == 0 || s.cfg.Shopee.PartnerKey == "" {
		return nil, errors.New("credenciais de parceiro da Shopee não configuradas")
	}

	redirectURI := fmt.Sprintf("%s/v1/integrations/shopee/callback?state=%s", s.cfg.App.BaseURL, state)

	return &integrator.BeginAuthResult{
		AuthURL:     s.client.AuthPartnerURL(redirectURI),
		Credentials: &domain.ShopeeCredentials{},
	}, nil
}

// ExchangeCode troca o code pelo par de tokens no token/get assinado.
// identifier é o shop_id devolvido no redirect.
func (s *Service) ExchangeCode(ctx context.Context, _ domain.Credentials, code, identifier string) (domain.Credentials, error) {
	shopID, err := strconv.ParseInt(identifier, 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, "shop_id inválido no callback da Shopee")
	}

	token, err := s.client.GetToken(ctx, code, shopID)
	if err != nil {
		return nil, err
	}

	if token.AccessToken == "" {
		return nil, errors.New("shopee não devolveu access_token")
	}

	return &domain.ShopeeCredentials{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ShopID:       shopID,
		ExpireIn:     token.ExpireIn,
		ObtainedAt:   time.Now(),
	}, nil
}

// FetchOrders varre o get_order_list por cursor até a plataforma sinalizar
// que não há mais páginas, respeitando o espaçamento de ~60 req/min.
func (s *Service) FetchOrders(ctx context.Context, creds domain.Credentials, since time.Time) ([]domain.RawOrder, error) {
	shopeeCreds, ok := creds.(*domain.ShopeeCredentials)
	if !ok || !shopeeCreds.Connected() {
		return nil, errors.Wrap(domain.ErrInvalidCredentials, "shopee: integração sem access_token")
	}

	pacerKey := "shopee:" + strconv.FormatInt(shopeeCreds.ShopID, 10)
	gap := time.Duration(s.cfg.Shopee.PageDelayMs) * time.Millisecond

	orders := make([]domain.RawOrder, 0)
	cursor := ""

	for page := 0; page < s.cfg.Sync.MaxPages; page++ {
		if err := s.pacer.Wait(ctx, pacerKey, gap); err != nil {
			return nil, err
		}

		result, err := s.client.GetOrderPage(ctx, shopeeclient.OrderPageParams{
			AccessToken: shopeeCreds.AccessToken,
			ShopID:      shopeeCreds.ShopID,
			TimeFrom:    since.Unix(),
			TimeTo:      time.Now().Unix(),
			PageSize:    s.cfg.Shopee.PageSize,
			Cursor:      cursor,
		})
		if err != nil {
			return nil, err
		}

		for _, order := range result.Orders {
			orders = append(orders, domain.RawOrder{
				ExternalID: order.OrderSN,
				CreatedAt:  time.Unix(order.CreateTime, 0),
				Total:      order.TotalAmount,
				Status:     order.OrderStatus,
				Cancelled:  shopeedomain.ExcludedStatuses[order.OrderStatus],
			})
		}

		if !result.More || result.NextCursor == "" || len(result.Orders) == 0 {
			break
		}
		cursor = result.NextCursor
	}

	logrus.WithFields(logrus.Fields{
		"shop_id": shopeeCreds.ShopID,
		"orders":  len(orders),
	}).Info("Varredura de pedidos da Shopee concluída")

	return orders, nil
}
