package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/mentoria/commerce-sync-api/internal/config"
	"github.com/mentoria/commerce-sync-api/internal/usecases/syncing"
	"github.com/sirupsen/logrus"
)

// OrderSyncService agenda a ressincronização periódica de todas as
// integrações conectadas. Desabilitado por padrão: a sincronização manual
// pela API continua disponível de qualquer forma.
type OrderSyncService struct {
	scheduler           *gocron.Scheduler
	appConfig           *config.Config
	syncer              syncing.Syncer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewOrderSyncService(syncer syncing.Syncer, appConfig *config.Config) *OrderSyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.SyncAll.CronSchedule,
		"sync_enabled":  appConfig.SyncAll.Enabled,
		"lookback_days": appConfig.Sync.LookbackDays,
	}).Info("Configuração do agendador de sincronização de pedidos carregada")

	return &OrderSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		appConfig: appConfig,
		syncer:    syncer,
	}
}

// Start inicia o agendador
func (s *OrderSyncService) Start(ctx context.Context) error {
	if !s.appConfig.SyncAll.Enabled {
		logrus.Info("Sincronização periódica de pedidos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.appConfig.SyncAll.CronSchedule).Info("Iniciando agendador de sincronização de pedidos")

	_, err := s.scheduler.Cron(s.appConfig.SyncAll.CronSchedule).Do(func() {
		s.syncAllIntegrations(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de pedidos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de pedidos")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *OrderSyncService) syncAllIntegrations(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de pedidos já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	s.lastSyncStartedAt = time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de pedidos de todas as integrações conectadas")

	if err := s.syncer.SyncAll(ctx); err != nil {
		logrus.WithError(err).Error("Sincronização de pedidos concluída com falhas")
	}

	s.lastSyncCompletedAt = time.Now()

	logrus.WithField("duration", time.Since(s.lastSyncStartedAt).String()).
		Info("Sincronização de pedidos concluída")
}

// TriggerManualSync inicia manualmente a sincronização de todas as
// integrações
func (s *OrderSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de pedidos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de pedidos")
	go s.syncAllIntegrations(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *OrderSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.appConfig.SyncAll.Enabled,
		"sync_cron":              s.appConfig.SyncAll.CronSchedule,
		"sync_lookback_days":     s.appConfig.Sync.LookbackDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
