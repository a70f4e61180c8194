package connecting

import (
	"context"
	"testing"
	"time"

	"github.com/mentoria/commerce-sync-api/infrastructure/integrator"
	integratormocks "github.com/mentoria/commerce-sync-api/infrastructure/integrator/mocks"
	noncemocks "github.com/mentoria/commerce-sync-api/infrastructure/noncestore/mocks"
	repomocks "github.com/mentoria/commerce-sync-api/infrastructure/repository/mocks"
	"github.com/mentoria/commerce-sync-api/internal/config"
	"github.com/mentoria/commerce-sync-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Vault: config.Vault{StateTTLMinutes: 10},
	}
}

type testEnv struct {
	connector       *integratormocks.MockConnector
	integrationRepo *repomocks.MockIntegrationRepository
	nonces          *noncemocks.MockStore
	service         Connector
}

func newTestEnv(t *testing.T, platform domain.Platform) *testEnv {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	connector := integratormocks.NewMockConnector(ctrl)
	connector.EXPECT().Platform().Return(platform).AnyTimes()

	integrationRepo := repomocks.NewMockIntegrationRepository(ctrl)
	nonces := noncemocks.NewMockStore(ctrl)

	return &testEnv{
		connector:       connector,
		integrationRepo: integrationRepo,
		nonces:          nonces,
		service:         NewService(integrationRepo, integrator.NewRegistry(connector), nonces, testConfig()),
	}
}

func encodedState(t *testing.T, userID int64, issuedAt time.Time) (string, string) {
	token, err := NewStateToken(userID)
	require.NoError(t, err)
	token.IssuedAt = issuedAt

	encoded, err := token.Encode()
	require.NoError(t, err)
	return encoded, token.Nonce
}

func TestAuthorizePersistsPendingIntegration(t *testing.T) {
	env := newTestEnv(t, domain.PlatformShopify)

	creds := &domain.ShopifyCredentials{ClientID: "cid", ClientSecret: "sec", ShopDomain: "loja.myshopify.com"}

	env.connector.EXPECT().
		BeginAuth(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&integrator.BeginAuthResult{
			AuthURL:     "https://loja.myshopify.com/admin/oauth/authorize?state=x",
			Credentials: creds,
		}, nil)

	env.integrationRepo.EXPECT().
		Upsert(gomock.Any()).
		Do(func(integration *domain.Integration) {
			assert.Equal(t, int64(9), integration.UserID)
			assert.Equal(t, domain.PlatformShopify, integration.Platform)
			assert.Equal(t, domain.SyncStatusPendingOAuth, integration.SyncStatus)
			assert.False(t, integration.IsActive)
			assert.Equal(t, creds, integration.Credentials)
		}).
		Return(nil)

	result, err := env.service.Authorize(context.Background(), domain.PlatformShopify, integrator.AuthorizeParams{
		UserID:       9,
		ShopDomain:   "loja.myshopify.com",
		ClientID:     "cid",
		ClientSecret: "sec",
	})

	require.NoError(t, err)
	assert.False(t, result.Connected)
	assert.NotEmpty(t, result.AuthURL)
}

func TestAuthorizeDirectConnectionSkipsCallback(t *testing.T) {
	env := newTestEnv(t, domain.PlatformOlistTiny)

	env.connector.EXPECT().
		BeginAuth(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&integrator.BeginAuthResult{
			Credentials: &domain.TinyCredentials{APIToken: "tok"},
			Connected:   true,
		}, nil)

	env.integrationRepo.EXPECT().
		Upsert(gomock.Any()).
		Do(func(integration *domain.Integration) {
			assert.True(t, integration.IsActive)
			assert.Equal(t, domain.SyncStatusConnected, integration.SyncStatus)
		}).
		Return(nil)

	result, err := env.service.Authorize(context.Background(), domain.PlatformOlistTiny, integrator.AuthorizeParams{
		UserID:   9,
		APIToken: "tok",
	})

	require.NoError(t, err)
	assert.True(t, result.Connected)
	assert.Empty(t, result.AuthURL)
}

func TestCallbackConnectsIntegration(t *testing.T) {
	env := newTestEnv(t, domain.PlatformShopify)

	state, nonce := encodedState(t, 9, time.Now())

	pending := &domain.Integration{
		UserID:      9,
		Platform:    domain.PlatformShopify,
		Credentials: &domain.ShopifyCredentials{ClientID: "cid", ClientSecret: "sec", ShopDomain: "loja.myshopify.com"},
		SyncStatus:  domain.SyncStatusPendingOAuth,
	}
	connected := &domain.ShopifyCredentials{
		ClientID: "cid", ClientSecret: "sec", ShopDomain: "loja.myshopify.com", AccessToken: "tok",
	}

	env.nonces.EXPECT().Consume(gomock.Any(), nonce).Return(true, nil)
	env.integrationRepo.EXPECT().
		GetByUserAndPlatform(int64(9), domain.PlatformShopify).
		Return(pending, nil)
	env.connector.EXPECT().
		ExchangeCode(gomock.Any(), pending.Credentials, "code123", "loja.myshopify.com").
		Return(connected, nil)
	env.integrationRepo.EXPECT().
		Upsert(gomock.Any()).
		Do(func(integration *domain.Integration) {
			assert.True(t, integration.IsActive)
			assert.Equal(t, domain.SyncStatusConnected, integration.SyncStatus)
			assert.Equal(t, connected, integration.Credentials)
		}).
		Return(nil)

	summary, err := env.service.Callback(context.Background(), domain.PlatformShopify, "code123", state, "loja.myshopify.com")

	require.NoError(t, err)
	assert.True(t, summary.IsActive)
	assert.Equal(t, domain.SyncStatusConnected, summary.SyncStatus)
}

func TestCallbackRejectsReplayedState(t *testing.T) {
	env := newTestEnv(t, domain.PlatformShopify)

	state, nonce := encodedState(t, 9, time.Now())

	env.nonces.EXPECT().Consume(gomock.Any(), nonce).Return(false, nil)

	_, err := env.service.Callback(context.Background(), domain.PlatformShopify, "code123", state, "")
	assert.ErrorIs(t, err, ErrStateReplayed)
}

func TestCallbackRejectsExpiredState(t *testing.T) {
	env := newTestEnv(t, domain.PlatformShopify)

	state, _ := encodedState(t, 9, time.Now().Add(-11*time.Minute))

	_, err := env.service.Callback(context.Background(), domain.PlatformShopify, "code123", state, "")
	assert.ErrorIs(t, err, ErrStateExpired)
}

func TestCallbackRejectsInvalidState(t *testing.T) {
	env := newTestEnv(t, domain.PlatformShopify)

	_, err := env.service.Callback(context.Background(), domain.PlatformShopify, "code123", "lixo", "")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestCallbackWithoutPendingIntegration(t *testing.T) {
	env := newTestEnv(t, domain.PlatformShopify)

	state, nonce := encodedState(t, 9, time.Now())

	env.nonces.EXPECT().Consume(gomock.Any(), nonce).Return(true, nil)
	env.integrationRepo.EXPECT().
		GetByUserAndPlatform(int64(9), domain.PlatformShopify).
		Return(nil, nil)

	_, err := env.service.Callback(context.Background(), domain.PlatformShopify, "code123", state, "")
	assert.ErrorIs(t, err, ErrIntegrationNotFound)
}

func TestCallbackTokenExchangeFailure(t *testing.T) {
	env := newTestEnv(t, domain.PlatformShopify)

	state, nonce := encodedState(t, 9, time.Now())

	pending := &domain.Integration{
		UserID:      9,
		Platform:    domain.PlatformShopify,
		Credentials: &domain.ShopifyCredentials{ClientID: "cid", ClientSecret: "sec", ShopDomain: "loja.myshopify.com"},
	}

	env.nonces.EXPECT().Consume(gomock.Any(), nonce).Return(true, nil)
	env.integrationRepo.EXPECT().
		GetByUserAndPlatform(int64(9), domain.PlatformShopify).
		Return(pending, nil)
	env.connector.EXPECT().
		ExchangeCode(gomock.Any(), gomock.Any(), "code123", "").
		Return(nil, errors.New("code expirado"))

	_, err := env.service.Callback(context.Background(), domain.PlatformShopify, "code123", state, "")
	assert.ErrorIs(t, err, ErrTokenExchangeFailed)
}

func TestListIntegrationsCoversAllPlatforms(t *testing.T) {
	env := newTestEnv(t, domain.PlatformShopify)

	now := time.Now()
	connected := &domain.Integration{
		UserID:     9,
		Platform:   domain.PlatformShopee,
		IsActive:   true,
		SyncStatus: domain.SyncStatusConnected,
		LastSyncAt: &now,
	}

	for _, platform := range domain.Platforms {
		if platform == domain.PlatformShopee {
			env.integrationRepo.EXPECT().
				GetByUserAndPlatform(int64(9), platform).
				Return(connected, nil)
			continue
		}
		env.integrationRepo.EXPECT().
			GetByUserAndPlatform(int64(9), platform).
			Return(nil, nil)
	}

	summaries, err := env.service.ListIntegrations(9)
	require.NoError(t, err)
	assert.Len(t, summaries, len(domain.Platforms))

	for _, summary := range summaries {
		if summary.Platform == domain.PlatformShopee {
			assert.True(t, summary.IsActive)
			assert.Equal(t, domain.SyncStatusConnected, summary.SyncStatus)
			assert.NotNil(t, summary.LastSyncAt)
			continue
		}
		assert.False(t, summary.IsActive)
	}
}
