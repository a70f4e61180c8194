package tinyclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mentoria/commerce-sync-api/infrastructure/integrator"
	tinydomain "github.com/mentoria/commerce-sync-api/infrastructure/integrator/tiny/domain"
	"github.com/mentoria/commerce-sync-api/internal/config"
	"github.com/pkg/errors"
)

type SearchParams struct {
	APIToken    string
	DataInicial time.Time
	Pagina      int
}

type Client interface {
	SearchOrders(ctx context.Context, params SearchParams) (*tinydomain.SearchResult, error)
}

type TinyClient struct {
	httpClient *http.Client
	config     *config.Config
	retry      integrator.RetryConfig
}

func NewClient(cfg *config.Config) Client {
	return &TinyClient{
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

func (c *TinyClient) SearchOrders(ctx context.Context, params SearchParams) (*tinydomain.SearchResult, error) {
	endpoint := c.config.Tiny.BaseURL + "/pedidos.pesquisa.php"

	form := url.Values{}
	form.Set("token", params.APIToken)
	form.Set("formato", "json")
	form.Set("dataInicial", params.DataInicial.Format(tinydomain.DateLayout))
	form.Set("pagina", strconv.Itoa(params.Pagina))
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

	var result tinydomain.SearchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta do pedidos.pesquisa")
	}

	return &result, nil
}
