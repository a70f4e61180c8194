package shopeeclient

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
	shopeedomain "github.com/mentoria/commerce-sync-api/infrastructure/integrator/shopee/domain"
	"github.com/mentoria/commerce-sync-api/internal/config"
	"github.com/mentoria/commerce-sync-api/pkg/signer"
	"github.com/pkg/errors"
)

const (
	authPartnerPath = "/api/v2/shop/auth_partner"
	tokenGetPath    = "/api/v2/auth/token/get"
	orderListPath   = "/api/v2/order/get_order_list"
)

// OrderPageParams delimita uma página da listagem de pedidos
type OrderPageParams struct {
	AccessToken string
	ShopID      int64
	TimeFrom    int64
	TimeTo      int64
	PageSize    int
	Cursor      string
}

// OrderPage é uma página de pedidos mais o cursor de continuação
type OrderPage struct {
	Orders     []shopeedomain.Order
	More       bool
	NextCursor string
}

type Client interface {
	AuthPartnerURL(redirectURI string) string
	GetToken(ctx context.Context, code string, shopID int64) (*shopeedomain.TokenResponse, error)
	GetOrderPage(ctx context.Context, params OrderPageParams) (*OrderPage, error)
}

type ShopeeClient struct {
	httpClient *http.Client
	config     *config.Config
	retry      integrator.RetryConfig
}

func NewClient(cfg *config.Config) Client {
	return &ShopeeClient{
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

// signedQuery monta os parâmetros comuns de parceiro: partner_id, timestamp
// e a assinatura HMAC sobre {partner_id}{api_path}{timestamp}
func (c *ShopeeClient) signedQuery(apiPath string) url.Values {
	timestamp := time.Now().Unix()
	sign := signer.SignShopee(c.config.Shopee.PartnerKey, c.config.Shopee.PartnerID, apiPath, timestamp)

	query := url.Values{}
	query.Set("partner_id", strconv.FormatInt(c.config.Shopee.PartnerID, 10))
	query.Set("timestamp", strconv.FormatInt(timestamp, 10))
	query.Set("sign", sign)
	return query
}

// AuthPartnerURL monta a URL de autorização assinada do parceiro
func (c *ShopeeClient) AuthPartnerURL(redirectURI string) string {
	query := c.signedQuery(authPartnerPath)
	query.Set("redirect", redirectURI)

	return c.config.Shopee.BaseURL + authPartnerPath + "?" + query.Encode()
}

func (c *ShopeeClient) GetToken(ctx context.Context, code string, shopID int64) (*shopeedomain.TokenResponse, error) {
	payload := fmt.Sprintf(`{"code":%q,"shop_id":%d,"partner_id":%d}`,
		code, shopID, c.config.Shopee.PartnerID)

	body, err := integrator.DoWithRetry(ctx, c.httpClient, func(ctx context.Context) (*http.Request, error) {
		query := c.signedQuery(tokenGetPath)
		endpoint := c.config.Shopee.BaseURL + tokenGetPath + "?" + query.Encode()

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(payload))
		if err != nil {
			return nil, errors.Wrap(err, "erro ao criar a requisição")
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	}, c.retry)
	if err != nil {
		return nil, err
	}

	var response shopeedomain.TokenResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta do token/get")
	}

	if response.Error != "" {
		return nil, errors.Errorf("shopee recusou a troca de code: %s (%s)", response.Error, response.Message)
	}

	return &response, nil
}

func (c *ShopeeClient) GetOrderPage(ctx context.Context, params OrderPageParams) (*OrderPage, error) {
	body, err := integrator.DoWithRetry(ctx, c.httpClient, func(ctx context.Context) (*http.Request, error) {
		query := c.signedQuery(orderListPath)
		query.Set("access_token", params.AccessToken)
		query.Set("shop_id", strconv.FormatInt(params.ShopID, 10))
		query.Set("time_range_field", "create_time")
		query.Set("time_from", strconv.FormatInt(params.TimeFrom, 10))
		query.Set("time_to", strconv.FormatInt(params.TimeTo, 10))
		query.Set("page_size", strconv.Itoa(params.PageSize))
		query.Set("response_optional_fields", "order_status,total_amount")
		if params.Cursor != "" {
			query.Set("cursor", params.Cursor)
		}

		endpoint := c.config.Shopee.BaseURL + orderListPath + "?" + query.Encode()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao criar a requisição")
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	}, c.retry)
	if err != nil {
		return nil, err
	}

	var response shopeedomain.OrderListResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta do get_order_list")
	}

	if response.Error != "" {
		return nil, errors.Errorf("shopee devolveu erro na listagem: %s (%s)", response.Error, response.Message)
	}

	return &OrderPage{
		Orders:     response.Response.OrderList,
		More:       response.Response.More,
		NextCursor: response.Response.NextCursor,
	}, nil
}
