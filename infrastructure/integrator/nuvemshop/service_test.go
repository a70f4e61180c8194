package nuvemshop

import (
	"context"
	"testing"
	"time"

	"github.com/mentoria/commerce-sync-api/infrastructure/integrator"
	nuvemshopdomain "github.com/mentoria/commerce-sync-api/infrastructure/integrator/nuvemshop/domain"
	"github.com/mentoria/commerce-sync-api/infrastructure/integrator/nuvemshop/mocks"
	"github.com/mentoria/commerce-sync-api/infrastructure/integrator/nuvemshop/nuvemshopclient"
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
		Nuvemshop: config.Nuvemshop{
			AppID:        "1234",
			ClientSecret: "segredo",
			AuthBaseURL:  "https://www.nuvemshop.com.br",
			APIBaseURL:   "https://api.nuvemshop.com.br/v1",
			PageSize:     2,
		},
	}
}

func TestBeginAuthBuildsInstallURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := New(testConfig(), mocks.NewMockClient(ctrl), ratelimit.NewPacer())

	result, err := service.BeginAuth(context.Background(), integrator.AuthorizeParams{UserID: 1}, "state-xyz")
	require.NoError(t, err)

	assert.Contains(t, result.AuthURL, "/apps/1234/authorize")
	assert.Contains(t, result.AuthURL, "state=state-xyz")
	assert.False(t, result.Connected)
}

func TestBeginAuthRequiresAppConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	cfg.Nuvemshop.ClientSecret = ""

	service := New(cfg, mocks.NewMockClient(ctrl), ratelimit.NewPacer())

	_, err := service.BeginAuth(context.Background(), integrator.AuthorizeParams{UserID: 1}, "state")
	assert.Error(t, err)
}

func TestExchangeCodeStoresStoreID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().
		GetAccessToken(gomock.Any(), "code123").
		Return(&nuvemshopdomain.TokenResponse{AccessToken: "tok", UserID: 5566}, nil)

	service := New(testConfig(), client, ratelimit.NewPacer())

	creds, err := service.ExchangeCode(context.Background(), nil, "code123", "")
	require.NoError(t, err)

	nuvemshopCreds, ok := creds.(*domain.NuvemshopCredentials)
	require.True(t, ok)
	assert.Equal(t, "tok", nuvemshopCreds.AccessToken)
	assert.Equal(t, int64(5566), nuvemshopCreds.StoreID)
}

func TestExchangeCodeRejectsIncompleteResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().
		GetAccessToken(gomock.Any(), "code123").
		Return(&nuvemshopdomain.TokenResponse{AccessToken: "tok"}, nil)

	service := New(testConfig(), client, ratelimit.NewPacer())

	_, err := service.ExchangeCode(context.Background(), nil, "code123", "")
	assert.Error(t, err)
}

func TestFetchOrdersPaginatesByPageNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)

	firstPage := []nuvemshopdomain.Order{
		{ID: 1, CreatedAt: "2026-08-01T10:00:00Z", Total: "100.00", Status: "open", PaymentStatus: "paid"},
		{ID: 2, CreatedAt: "2026-08-01T12:00:00Z", Total: "55.00", Status: "cancelled", PaymentStatus: "voided"},
	}
	secondPage := []nuvemshopdomain.Order{
		{ID: 3, CreatedAt: "2026-08-02T08:00:00Z", Total: "30.00", Status: "open", PaymentStatus: "paid"},
	}

	gomock.InOrder(
		client.EXPECT().
			GetOrderPage(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, params nuvemshopclient.OrderPageParams) {
				assert.Equal(t, 1, params.Page)
				assert.Equal(t, int64(5566), params.StoreID)
			}).
			Return(firstPage, nil),
		client.EXPECT().
			GetOrderPage(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, params nuvemshopclient.OrderPageParams) {
				assert.Equal(t, 2, params.Page)
			}).
			Return(secondPage, nil),
	)

	service := New(testConfig(), client, ratelimit.NewPacer())

	creds := &domain.NuvemshopCredentials{AccessToken: "tok", StoreID: 5566}
	orders, err := service.FetchOrders(context.Background(), creds, time.Now().AddDate(0, 0, -90))
	require.NoError(t, err)

	require.Len(t, orders, 3)
	assert.False(t, orders[0].Cancelled)
	assert.True(t, orders[1].Cancelled)
	assert.Equal(t, 30.0, orders[2].Total)
}

func TestFetchOrdersRejectsPendingCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := New(testConfig(), mocks.NewMockClient(ctrl), ratelimit.NewPacer())

	_, err := service.FetchOrders(context.Background(), &domain.NuvemshopCredentials{}, time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
