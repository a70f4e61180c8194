package syncing

import (
	"context"
	"testing"
	"time"

	integratormocks "github.com/mentoria/commerce-sync-api/infrastructure/integrator/mocks"
	repomocks "github.com/mentoria/commerce-sync-api/infrastructure/repository/mocks"
	"github.com/mentoria/commerce-sync-api/internal/config"
	"github.com/mentoria/commerce-sync-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mentoria/commerce-sync-api/infrastructure/integrator"
)

func testConfig() *config.Config {
	return &config.Config{
		Sync: config.Sync{
			LookbackDays: 90,
			MaxPages:     500,
		},
	}
}

func connectedIntegration(userID int64) *domain.Integration {
	return &domain.Integration{
		ID:          1,
		UserID:      userID,
		Platform:    domain.PlatformShopify,
		Credentials: &domain.ShopifyCredentials{ClientID: "cid", ClientSecret: "sec", ShopDomain: "loja.myshopify.com", AccessToken: "tok"},
		IsActive:    true,
		SyncStatus:  domain.SyncStatusConnected,
	}
}

func TestRunSync(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		setup    func(connector *integratormocks.MockConnector, integrationRepo *repomocks.MockIntegrationRepository, metricRepo *repomocks.MockDailyMetricRepository)
		validate func(t *testing.T, summary *domain.SyncSummary, err error)
	}{
		{
			name: "Sincronização com sucesso agrega por dia e marca a integração",
			setup: func(connector *integratormocks.MockConnector, integrationRepo *repomocks.MockIntegrationRepository, metricRepo *repomocks.MockDailyMetricRepository) {
				integrationRepo.EXPECT().
					GetByUserAndPlatform(int64(7), domain.PlatformShopify).
					Return(connectedIntegration(7), nil)

				orders := []domain.RawOrder{
					{ExternalID: "1", CreatedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC), Total: 100.0},
					{ExternalID: "2", CreatedAt: time.Date(2026, 8, 1, 15, 0, 0, 0, time.UTC), Total: 50.0, Cancelled: true},
					{ExternalID: "3", CreatedAt: time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC), Total: 30.0},
				}
				connector.EXPECT().
					FetchOrders(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(orders, nil)

				// Uma linha por dia com pedidos válidos; o cancelado não conta
				metricRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					Do(func(metric *domain.DailyMetric) {
						assert.Equal(t, int64(7), metric.UserID)
						assert.Equal(t, domain.PlatformShopify, metric.Platform)
						switch metric.Date.Format("2006-01-02") {
						case "2026-08-01":
							assert.Equal(t, 100.0, metric.Faturamento)
							assert.Equal(t, 1, metric.VendasQuantidade)
						case "2026-08-02":
							assert.Equal(t, 30.0, metric.Faturamento)
							assert.Equal(t, 1, metric.VendasQuantidade)
						default:
							t.Errorf("data inesperada: %s", metric.Date)
						}
					}).
					Return(nil).
					Times(2)

				integrationRepo.EXPECT().
					MarkSynced(int64(7), domain.PlatformShopify, gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, summary *domain.SyncSummary, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 3, summary.OrdersProcessed)
				assert.Equal(t, 2, summary.DaysUpdated)
			},
		},
		{
			name: "Integração inexistente falha sem chamar a plataforma",
			setup: func(connector *integratormocks.MockConnector, integrationRepo *repomocks.MockIntegrationRepository, metricRepo *repomocks.MockDailyMetricRepository) {
				integrationRepo.EXPECT().
					GetByUserAndPlatform(int64(7), domain.PlatformShopify).
					Return(nil, nil)
			},
			validate: func(t *testing.T, summary *domain.SyncSummary, err error) {
				assert.ErrorIs(t, err, ErrIntegrationNotFound)
				assert.Nil(t, summary)
			},
		},
		{
			name: "Integração inativa falha sem chamar a plataforma",
			setup: func(connector *integratormocks.MockConnector, integrationRepo *repomocks.MockIntegrationRepository, metricRepo *repomocks.MockDailyMetricRepository) {
				integration := connectedIntegration(7)
				integration.IsActive = false
				integrationRepo.EXPECT().
					GetByUserAndPlatform(int64(7), domain.PlatformShopify).
					Return(integration, nil)
			},
			validate: func(t *testing.T, summary *domain.SyncSummary, err error) {
				assert.ErrorIs(t, err, ErrIntegrationInactive)
				assert.Nil(t, summary)
			},
		},
		{
			name: "Falha na plataforma marca status de erro sem tocar o last_sync_at",
			setup: func(connector *integratormocks.MockConnector, integrationRepo *repomocks.MockIntegrationRepository, metricRepo *repomocks.MockDailyMetricRepository) {
				integrationRepo.EXPECT().
					GetByUserAndPlatform(int64(7), domain.PlatformShopify).
					Return(connectedIntegration(7), nil)

				connector.EXPECT().
					FetchOrders(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("plataforma fora do ar"))

				integrationRepo.EXPECT().
					UpdateSyncStatus(int64(7), domain.PlatformShopify, domain.SyncStatusError).
					Return(nil)
			},
			validate: func(t *testing.T, summary *domain.SyncSummary, err error) {
				assert.Error(t, err)
				assert.Nil(t, summary)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			connector := integratormocks.NewMockConnector(ctrl)
			connector.EXPECT().Platform().Return(domain.PlatformShopify).AnyTimes()

			integrationRepo := repomocks.NewMockIntegrationRepository(ctrl)
			metricRepo := repomocks.NewMockDailyMetricRepository(ctrl)

			tt.setup(connector, integrationRepo, metricRepo)

			service := NewService(
				integrationRepo,
				metricRepo,
				integrator.NewRegistry(connector),
				testConfig(),
			)

			summary, err := service.RunSync(ctx, 7, domain.PlatformShopify)
			tt.validate(t, summary, err)
		})
	}
}

func TestRunSyncUnknownPlatform(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrationRepo := repomocks.NewMockIntegrationRepository(ctrl)
	metricRepo := repomocks.NewMockDailyMetricRepository(ctrl)

	service := NewService(integrationRepo, metricRepo, integrator.NewRegistry(), testConfig())

	_, err := service.RunSync(context.Background(), 7, domain.PlatformShopee)
	assert.ErrorIs(t, err, domain.ErrUnknownPlatform)
}

// Reprocessar a mesma janela produz exatamente as mesmas linhas de métricas
func TestRunSyncIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	connector := integratormocks.NewMockConnector(ctrl)
	connector.EXPECT().Platform().Return(domain.PlatformShopify).AnyTimes()

	integrationRepo := repomocks.NewMockIntegrationRepository(ctrl)
	metricRepo := repomocks.NewMockDailyMetricRepository(ctrl)

	orders := []domain.RawOrder{
		{ExternalID: "1", CreatedAt: time.Date(2026, 8, 10, 10, 0, 0, 0, time.UTC), Total: 75.0},
	}

	integrationRepo.EXPECT().
		GetByUserAndPlatform(int64(3), domain.PlatformShopify).
		Return(connectedIntegration(3), nil).
		Times(2)
	connector.EXPECT().
		FetchOrders(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(orders, nil).
		Times(2)

	var saved []domain.DailyMetric
	metricRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		Do(func(metric *domain.DailyMetric) {
			saved = append(saved, *metric)
		}).
		Return(nil).
		Times(2)

	integrationRepo.EXPECT().
		MarkSynced(int64(3), domain.PlatformShopify, gomock.Any()).
		Return(nil).
		Times(2)

	service := NewService(integrationRepo, metricRepo, integrator.NewRegistry(connector), testConfig())

	_, err := service.RunSync(context.Background(), 3, domain.PlatformShopify)
	assert.NoError(t, err)
	_, err = service.RunSync(context.Background(), 3, domain.PlatformShopify)
	assert.NoError(t, err)

	assert.Len(t, saved, 2)
	assert.Equal(t, saved[0], saved[1])
}

func TestSyncAllContinuesAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	connector := integratormocks.NewMockConnector(ctrl)
	connector.EXPECT().Platform().Return(domain.PlatformShopify).AnyTimes()

	integrationRepo := repomocks.NewMockIntegrationRepository(ctrl)
	metricRepo := repomocks.NewMockDailyMetricRepository(ctrl)

	broken := connectedIntegration(1)
	healthy := connectedIntegration(2)

	integrationRepo.EXPECT().
		ListConnected().
		Return([]*domain.Integration{broken, healthy}, nil)

	integrationRepo.EXPECT().
		GetByUserAndPlatform(int64(1), domain.PlatformShopify).
		Return(broken, nil)
	connector.EXPECT().
		FetchOrders(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("token revogado"))
	integrationRepo.EXPECT().
		UpdateSyncStatus(int64(1), domain.PlatformShopify, domain.SyncStatusError).
		Return(nil)

	integrationRepo.EXPECT().
		GetByUserAndPlatform(int64(2), domain.PlatformShopify).
		Return(healthy, nil)
	connector.EXPECT().
		FetchOrders(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.RawOrder{}, nil)
	integrationRepo.EXPECT().
		MarkSynced(int64(2), domain.PlatformShopify, gomock.Any()).
		Return(nil)

	service := NewService(integrationRepo, metricRepo, integrator.NewRegistry(connector), testConfig())

	err := service.SyncAll(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "1 de 2")
}
