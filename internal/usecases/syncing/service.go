package syncing

import (
	"context"
	"time"

	"github.com/mentoria/commerce-sync-api/infrastructure/integrator"
	"github.com/mentoria/commerce-sync-api/infrastructure/repository"
	"github.com/mentoria/commerce-sync-api/internal/config"
	"github.com/mentoria/commerce-sync-api/internal/domain"
	"github.com/mentoria/commerce-sync-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Syncer orquestra a sincronização de pedidos de uma integração
type Syncer interface {
	RunSync(ctx context.Context, userID int64, platform domain.Platform) (*domain.SyncSummary, error)
	SyncAll(ctx context.Context) error
}

type Service struct {
	integrationRepo repository.IntegrationRepository
	metricRepo      repository.DailyMetricRepository
	connectors      integrator.Registry
	cfg             *config.Config
}

func NewService(
	integrationRepo repository.IntegrationRepository,
	metricRepo repository.DailyMetricRepository,
	connectors integrator.Registry,
	cfg *config.Config,
) Syncer {
	return &Service{
		integrationRepo: integrationRepo,
		metricRepo:      metricRepo,
		connectors:      connectors,
		cfg:             cfg,
	}
}

// RunSync executa o ciclo completo: busca os pedidos da janela retroativa,
// agrega por dia e reconcilia as linhas de métricas. Reexecutar sobre os
// mesmos pedidos produz as mesmas linhas.
func (s *Service) RunSync(ctx context.Context, userID int64, platform domain.Platform) (*domain.SyncSummary, error) {
	connector, err := s.connectors.Get(platform)
	if err != nil {
		return nil, err
	}

	integration, err := s.integrationRepo.GetByUserAndPlatform(userID, platform)
	if err != nil {
		return nil, err
	}
	if integration == nil {
		return nil, errors.Wrapf(ErrIntegrationNotFound, "usuário %d, plataforma %s", userID, platform)
	}
	if !integration.IsActive || integration.Credentials == nil || !integration.Credentials.Connected() {
		return nil, errors.Wrapf(ErrIntegrationInactive, "usuário %d, plataforma %s", userID, platform)
	}

	since := time.Now().AddDate(0, 0, -s.cfg.Sync.LookbackDays)

	summary, err := s.syncSince(ctx, connector, integration, since)
	if err != nil {
		// A falha preserva o last_sync_at anterior: a próxima execução
		// recomeça da mesma janela
		if statusErr := s.integrationRepo.UpdateSyncStatus(userID, platform, domain.SyncStatusError); statusErr != nil {
			logrus.WithError(statusErr).Error("Erro ao marcar a integração com status de erro")
		}
		return nil, err
	}

	if err := s.integrationRepo.MarkSynced(userID, platform, time.Now()); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  userID,
		"platform": platform,
		"orders":   summary.OrdersProcessed,
		"days":     summary.DaysUpdated,
	}).Info("Sincronização concluída")

	return summary, nil
}

func (s *Service) syncSince(ctx context.Context, connector integrator.Connector, integration *domain.Integration, since time.Time) (*domain.SyncSummary, error) {
	orders, err := connector.FetchOrders(ctx, integration.Credentials, since)
	if err != nil {
		return nil, err
	}

	buckets := Aggregate(orders)

	for day, bucket := range buckets {
		date, err := ParseBucketDate(day)
		if err != nil {
			return nil, errors.Wrapf(err, "bucket com dia inválido: %s", day)
		}

		metric := &domain.DailyMetric{
			UserID:           integration.UserID,
			Date:             date,
			Platform:         integration.Platform,
			Faturamento:      utils.RoundWithTwoDecimalPlace(bucket.Faturamento),
			VendasQuantidade: bucket.VendasQuantidade,
			VendasValor:      utils.RoundWithTwoDecimalPlace(bucket.VendasValor),
		}

		if err := s.metricRepo.SaveOrUpdate(metric); err != nil {
			return nil, err
		}
	}

	return &domain.SyncSummary{
		Platform:        integration.Platform,
		OrdersProcessed: len(orders),
		DaysUpdated:     len(buckets),
	}, nil
}

// SyncAll ressincroniza todas as integrações conectadas. Falhas individuais
// não interrompem as demais.
func (s *Service) SyncAll(ctx context.Context) error {
	integrations, err := s.integrationRepo.ListConnected()
	if err != nil {
		return err
	}

	var failed int
	for _, integration := range integrations {
		if _, err := s.RunSync(ctx, integration.UserID, integration.Platform); err != nil {
			failed++
			logrus.WithFields(logrus.Fields{
				"user_id":  integration.UserID,
				"platform": integration.Platform,
			}).WithError(err).Error("Erro ao sincronizar integração")
		}
	}

	if failed > 0 {
		return errors.Errorf("%d de %d integrações falharam na sincronização", failed, len(integrations))
	}

	return nil
}
