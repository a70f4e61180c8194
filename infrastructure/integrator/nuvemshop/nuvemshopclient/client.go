package nuvemshopclient

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
	nuvemshopdomain "github.com/mentoria/commerce-sync-api/infrastructure/integrator/nuvemshop/domain"
	"github.com/mentoria/commerce-sync-api/internal/config"
	"github.com/pkg/errors"
)

// OrderPageParams delimita uma página da listagem de pedidos
type OrderPageParams struct {
	StoreID      int64
	AccessToken  string
	CreatedAtMin time.Time
	PageSize     int
	Page         int
}

type Client interface {
	GetAccessToken(ctx context.Context, code string) (*nuvemshopdomain.TokenResponse, error)
	GetOrderPage(ctx context.Context, params OrderPageParams) ([]nuvemshopdomain.Order, error)
}

type NuvemshopClient struct {
	httpClient *http.Client
	config     *config.Config
	retry      integrator.RetryConfig
}

func NewClient(cfg *config.Config) Client {
	return &NuvemshopClient{
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

func (c *NuvemshopClient) GetAccessToken(ctx context.Context, code string) (*nuvemshopdomain.TokenResponse, error) {
	endpoint := c.config.Nuvemshop.AuthBaseURL + "/apps/authorize/token"

	form := url.Values{}
	form.Set("client_id", c.config.Nuvemshop.AppID)
	form.Set("client_secret", c.config.Nuvemshop.ClientSecret)
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
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

	var response nuvemshopdomain.TokenResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta do authorize/token")
	}

	if response.Error != "" {
		return nil, errors.Errorf("nuvemshop recusou a troca de code: %s (%s)", response.Error, response.Description)
	}

	return &response, nil
}

func (c *NuvemshopClient) GetOrderPage(ctx context.Context, params OrderPageParams) ([]nuvemshopdomain.Order, error) {
	body, err := integrator.DoWithRetry(ctx, c.httpClient, func(ctx context.Context) (*http.Request, error) {
		query := url.Values{}
		query.Set("per_page", strconv.Itoa(params.PageSize))
		query.Set("page", strconv.Itoa(params.Page))
		query.Set("created_at_min", params.CreatedAtMin.Format(time.RFC3339))
		query.Set("fields", "id,created_at,total,status,payment_status")

		endpoint := fmt.Sprintf("%s/%d/orders?%s",
			c.config.Nuvemshop.APIBaseURL, params.StoreID, query.Encode())

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao criar a requisição")
		}
		req.Header.Set("Authentication", "bearer "+params.AccessToken)
		req.Header.Set("Accept", "application/json")
		return req, nil
	}, c.retry)
	if err != nil {
		// A Nuvemshop sinaliza página além do fim com 404
		if upstream, ok := err.(*integrator.UpstreamError); ok && upstream.StatusCode == http.StatusNotFound && params.Page > 1 {
			return nil, nil
		}
		return nil, err
	}

	var orders []nuvemshopdomain.Order
	if err := json.Unmarshal(body, &orders); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta do /orders")
	}

	return orders, nil
}
