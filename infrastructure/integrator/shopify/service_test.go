package shopify

import (
	"context"
	"testing"
	"time"

	"github.com/mentoria/commerce-sync-api/infrastructure/integrator"
	shopifydomain "github.com/mentoria/commerce-sync-api/infrastructure/integrator/shopify/domain"
	"github.com/mentoria/commerce-sync-api/infrastructure/integrator/shopify/mocks"
	"github.com/mentoria/commerce-sync-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/mentoria/commerce-sync-api/internal/config"
	"github.com/mentoria/commerce-sync-api/internal/domain"
	"github.com/mentoria/commerce-sync-api/pkg/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		App:     config.App{BaseURL: "https://api.exemplo.com.br"},
		Sync:    config.Sync{LookbackDays: 90, MaxPages: 500},
		Shopify: config.Shopify{APIVersion: "2024-01", Scopes: "read_orders", PageSize: 2},
	}
}

func connectedCreds() *domain.ShopifyCredentials {
	return &domain.ShopifyCredentials{
		ClientID:     "cid",
		ClientSecret: "sec",
		ShopDomain:   "loja.myshopify.com",
		AccessToken:  "tok",
	}
}

func TestBeginAuthBuildsAuthorizeURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := New(testConfig(), mocks.NewMockClient(ctrl), ratelimit.NewPacer())

	result, err := service.BeginAuth(context.Background(), integrator.AuthorizeParams{
		UserID:       1,
		ShopDomain:   "Loja.myshopify.com",
		ClientID:     "cid",
		ClientSecret: "sec",
	}, "state-abc")

	require.NoError(t, err)
	assert.Contains(t, result.AuthURL, "loja.myshopify.com/admin/oauth/authorize")
	assert.Contains(t, result.AuthURL, "state=state-abc")
	assert.Contains(t, result.AuthURL, "client_id=cid")
	assert.False(t, result.Connected)
}

func TestBeginAuthRequiresAppCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := New(testConfig(), mocks.NewMockClient(ctrl), ratelimit.NewPacer())

	_, err := service.BeginAuth(context.Background(), integrator.AuthorizeParams{
		UserID:     1,
		ShopDomain: "loja.myshopify.com",
	}, "state")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestFetchOrdersPaginatesBySinceID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)

	firstPage := []shopifydomain.Order{
		{ID: 10, CreatedAt: "2026-08-01T10:00:00Z", TotalPrice: "100.00", FinancialStatus: "paid"},
		{ID: 11, CreatedAt: "2026-08-01T11:00:00Z", TotalPrice: "50.00", FinancialStatus: "refunded"},
	}
	secondPage := []shopifydomain.Order{
		{ID: 12, CreatedAt: "2026-08-02T09:00:00Z", TotalPrice: "30.00", FinancialStatus: "paid"},
	}

	gomock.InOrder(
		client.EXPECT().
			GetOrderPage(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, params shopifyclient.OrderPageParams) {
				assert.Zero(t, params.SinceID)
			}).
			Return(firstPage, nil),
		client.EXPECT().
			GetOrderPage(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, params shopifyclient.OrderPageParams) {
				assert.Equal(t, int64(11), params.SinceID)
			}).
			Return(secondPage, nil),
	)

	service := New(testConfig(), client, ratelimit.NewPacer())

	orders, err := service.FetchOrders(context.Background(), connectedCreds(), time.Now().AddDate(0, 0, -90))
	require.NoError(t, err)

	require.Len(t, orders, 3)
	assert.Equal(t, 100.0, orders[0].Total)
	assert.False(t, orders[0].Cancelled)
	assert.True(t, orders[1].Cancelled)
	assert.Equal(t, "12", orders[2].ExternalID)
}

func TestFetchOrdersSkipsMalformedDates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)

	client.EXPECT().
		GetOrderPage(gomock.Any(), gomock.Any()).
		Return([]shopifydomain.Order{
			{ID: 20, CreatedAt: "isso não é uma data", TotalPrice: "10.00", FinancialStatus: "paid"},
		}, nil)

	service := New(testConfig(), client, ratelimit.NewPacer())

	orders, err := service.FetchOrders(context.Background(), connectedCreds(), time.Now().AddDate(0, 0, -90))
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestFetchOrdersRejectsPendingCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := New(testConfig(), mocks.NewMockClient(ctrl), ratelimit.NewPacer())

	pending := &domain.ShopifyCredentials{ClientID: "cid", ClientSecret: "sec", ShopDomain: "loja.myshopify.com"}
	_, err := service.FetchOrders(context.Background(), pending, time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
