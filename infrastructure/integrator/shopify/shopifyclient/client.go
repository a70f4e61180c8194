package shopifyclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mentoria/commerce-sync-api/infrastructure/integrator"
	shopifydomain "github.com/mentoria/commerce-sync-api/infrastructure/integrator/shopify/domain"
	"github.com/mentoria/commerce-sync-api/internal/config"
	"github.com/pkg/errors"
)

// OrderPageParams delimita uma página do orders.json. SinceID implementa a
// paginação: cada página pede os pedidos com id maior que o último visto.
type OrderPageParams struct {
	ShopDomain   string
	AccessToken  string
	CreatedAtMin time.Time
	PageSize     int
	SinceID      int64
}

type Client interface {
	GetAccessToken(ctx context.Context, creds TokenExchangeParams) (*shopifydomain.TokenResponse, error)
	GetOrderPage(ctx context.Context, params OrderPageParams) ([]shopifydomain.Order, error)
}

// TokenExchangeParams carrega os dados da troca de code por token
type TokenExchangeParams struct {
	ShopDomain   string
	ClientID     string
	ClientSecret string
	Code         string
}

type ShopifyClient struct {
	httpClient *http.Client
	config     *config.Config
	retry      integrator.RetryConfig
}

func NewClient(cfg *config.Config) Client {
	return &ShopifyClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Sync.HTTPTimeoutSeconds) * time.Second,
		},
		config: cfg,
		retry: integrator.RetryConfig{
			MaxRetries: cfg.Sync.MaxRetries,
			BaseDelay:  time.Duration(cfg.Sync.RetryBaseMs) * time.Millisecond,
		},
	}
}

// NormalizeShopDomain garante o sufixo .myshopify.com
func NormalizeShopDomain(shop string) string {
	shop = strings.TrimPrefix(shop, "https://")
	shop = strings.TrimSuffix(shop, "/")
	if !strings.Contains(shop, ".") {
		shop += ".myshopify.com"
	}
	return shop
}

func (c *ShopifyClient) GetAccessToken(ctx context.Context, params TokenExchangeParams) (*shopifydomain.TokenResponse, error) {
	endpoint := fmt.Sprintf("https://%s/admin/oauth/access_token", NormalizeShopDomain(params.ShopDomain))

	form := url.Values{}
	form.Set("client_id", params.ClientID)
	form.Set("client_secret", params.ClientSecret)
	form.Set("code", params.Code)
	payload := form.Encode()

	body, err := integrator.DoWithRetry(ctx, c.httpClient, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(payload))
		if err != nil {
			return nil, errors.Wrap(err, "erro ao criar a requisição")
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Accept", "application/json")
		return req, nil
	}, c.retry)
	if err != nil {
		return nil, err
	}

	var response shopifydomain.TokenResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta do access_token")
	}

	return &response, nil
}

func (c *ShopifyClient) GetOrderPage(ctx context.Context, params OrderPageParams) ([]shopifydomain.Order, error) {
	body, err := integrator.DoWithRetry(ctx, c.httpClient, func(ctx context.Context) (*http.Request, error) {
		query := url.Values{}
		query.Set("status", "any")
		query.Set("limit", strconv.Itoa(params.PageSize))
		query.Set("created_at_min", params.CreatedAtMin.Format(time.RFC3339))
		query.Set("fields", "id,created_at,total_price,financial_status,cancelled_at")
		if params.SinceID > 0 {
			query.Set("since_id", strconv.FormatInt(params.SinceID, 10))
		}

		endpoint := fmt.Sprintf("https://%s/admin/api/%s/orders.json?%s",
			NormalizeShopDomain(params.ShopDomain), c.config.Shopify.APIVersion, query.Encode())

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao criar a requisição")
		}
		req.Header.Set("X-Shopify-Access-Token", params.AccessToken)
		req.Header.Set("Accept", "application/json")
		return req, nil
	}, c.retry)
	if err != nil {
		return nil, err
	}

	var response shopifydomain.OrdersResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta do orders.json")
	}

	return response.Orders, nil
}
