package tiny

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/mentoria/commerce-sync-api/infrastructure/integrator"
	tinydomain "github.com/mentoria/commerce-sync-api/infrastructure/integrator/tiny/domain"
	"github.com/mentoria/commerce-sync-api/infrastructure/integrator/tiny/mocks"
	"github.com/mentoria/commerce-sync-api/infrastructure/integrator/tiny/tinyclient"
	"github.com/mentoria/commerce-sync-api/internal/config"
	"github.com/mentoria/commerce-sync-api/internal/domain"
	"github.com/mentoria/commerce-sync-api/pkg/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Sync: config.Sync{LookbackDays: 90, MaxPages: 500},
		Tiny: config.Tiny{BaseURL: "https://api.tiny.com.br/api2"},
	}
}

func searchResult(pages int, orders ...tinydomain.Order) *tinydomain.SearchResult {
	result := &tinydomain.SearchResult{}
	result.Retorno.Status = "OK"
	result.Retorno.StatusProcessamento = "3"
	result.Retorno.NumeroPaginas = pages
	for _, order := range orders {
		result.Retorno.Pedidos = append(result.Retorno.Pedidos, tinydomain.OrderWrapper{Pedido: order})
	}
	return result
}

func errorResult(code string, message string) *tinydomain.SearchResult {
	result := &tinydomain.SearchResult{}
	result.Retorno.Status = "Erro"
	result.Retorno.CodigoErro = json.Number(code)
	result.Retorno.Erros = []tinydomain.ErrorWrapper{{Erro: message}}
	return result
}

func TestBeginAuthProbesToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().
		SearchOrders(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, params tinyclient.SearchParams) {
			assert.Equal(t, "token-valido", params.APIToken)
		}).
		Return(searchResult(1), nil)

	service := New(testConfig(), client, ratelimit.NewPacer())

	result, err := service.BeginAuth(context.Background(), integrator.AuthorizeParams{
		UserID:   1,
		APIToken: "token-valido",
	}, "")

	require.NoError(t, err)
	assert.True(t, result.Connected)
	assert.Empty(t, result.AuthURL)
}

func TestBeginAuthAcceptsTokenWithoutOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	// Código 20: consulta válida sem registros. O token funciona.
	client.EXPECT().
		SearchOrders(gomock.Any(), gomock.Any()).
		Return(errorResult("20", "A consulta não retornou registros"), nil)

	service := New(testConfig(), client, ratelimit.NewPacer())

	result, err := service.BeginAuth(context.Background(), integrator.AuthorizeParams{
		UserID:   1,
		APIToken: "token-sem-pedidos",
	}, "")

	require.NoError(t, err)
	assert.True(t, result.Connected)
}

func TestBeginAuthRejectsInvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().
		SearchOrders(gomock.Any(), gomock.Any()).
		Return(errorResult("1", "Token inválido"), nil)

	service := New(testConfig(), client, ratelimit.NewPacer())

	_, err := service.BeginAuth(context.Background(), integrator.AuthorizeParams{
		UserID:   1,
		APIToken: "token-invalido",
	}, "")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestBeginAuthRequiresToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := New(testConfig(), mocks.NewMockClient(ctrl), ratelimit.NewPacer())

	_, err := service.BeginAuth(context.Background(), integrator.AuthorizeParams{UserID: 1}, "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestExchangeCodeNotSupported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := New(testConfig(), mocks.NewMockClient(ctrl), ratelimit.NewPacer())

	_, err := service.ExchangeCode(context.Background(), nil, "code", "")
	assert.Error(t, err)
}

func TestFetchOrdersWalksAllPages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)

	gomock.InOrder(
		client.EXPECT().
			SearchOrders(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, params tinyclient.SearchParams) {
				assert.Equal(t, 1, params.Pagina)
			}).
			Return(searchResult(2,
				tinydomain.Order{ID: 1, DataPedido: "01/08/2026", TotalPedido: "150,00", Situacao: "Faturado"},
				tinydomain.Order{ID: 2, DataPedido: "01/08/2026", TotalPedido: "80,00", Situacao: "Cancelado"},
			), nil),
		client.EXPECT().
			SearchOrders(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, params tinyclient.SearchParams) {
				assert.Equal(t, 2, params.Pagina)
			}).
			Return(searchResult(2,
				tinydomain.Order{ID: 3, DataPedido: "02/08/2026", TotalPedido: "42,50", Situacao: "Aprovado"},
			), nil),
	)

	service := New(testConfig(), client, ratelimit.NewPacer())

	orders, err := service.FetchOrders(context.Background(), &domain.TinyCredentials{APIToken: "tok"}, time.Now().AddDate(0, 0, -90))
	require.NoError(t, err)

	require.Len(t, orders, 3)
	assert.Equal(t, 150.0, orders[0].Total)
	assert.False(t, orders[0].Cancelled)
	assert.True(t, orders[1].Cancelled)
	assert.Equal(t, "3", orders[2].ExternalID)
	assert.Equal(t, time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC), orders[2].CreatedAt)
}

func TestFetchOrdersStopsOnEmptyResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().
		SearchOrders(gomock.Any(), gomock.Any()).
		Return(errorResult("20", "A consulta não retornou registros"), nil)

	service := New(testConfig(), client, ratelimit.NewPacer())

	orders, err := service.FetchOrders(context.Background(), &domain.TinyCredentials{APIToken: "tok"}, time.Now())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestFetchOrdersFailsOnAPIError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().
		SearchOrders(gomock.Any(), gomock.Any()).
		Return(errorResult("1", "Token inválido"), nil)

	service := New(testConfig(), client, ratelimit.NewPacer())

	_, err := service.FetchOrders(context.Background(), &domain.TinyCredentials{APIToken: "tok"}, time.Now())
	assert.Error(t, err)
}
