package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/mentoria/commerce-sync-api/infrastructure/database/postgres"
	"github.com/mentoria/commerce-sync-api/infrastructure/integrator"
	"github.com/mentoria/commerce-sync-api/infrastructure/integrator/nuvemshop"
	"github.com/mentoria/commerce-sync-api/infrastructure/integrator/nuvemshop/nuvemshopclient"
	"github.com/mentoria/commerce-sync-api/infrastructure/integrator/shopee"
	"github.com/mentoria/commerce-sync-api/infrastructure/integrator/shopee/shopeeclient"
	"github.com/mentoria/commerce-sync-api/infrastructure/integrator/shopify"
	"github.com/mentoria/commerce-sync-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/mentoria/commerce-sync-api/infrastructure/integrator/tiny"
	"github.com/mentoria/commerce-sync-api/infrastructure/integrator/tiny/tinyclient"
	"github.com/mentoria/commerce-sync-api/infrastructure/noncestore"
	"github.com/mentoria/commerce-sync-api/infrastructure/repository"
	"github.com/mentoria/commerce-sync-api/internal/api"
	"github.com/mentoria/commerce-sync-api/internal/config"
	"github.com/mentoria/commerce-sync-api/internal/scheduler"
	"github.com/mentoria/commerce-sync-api/internal/usecases/connecting"
	"github.com/mentoria/commerce-sync-api/internal/usecases/reporting"
	"github.com/mentoria/commerce-sync-api/internal/usecases/syncing"
	"github.com/mentoria/commerce-sync-api/pkg/crypto"
	"github.com/mentoria/commerce-sync-api/pkg/ratelimit"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	cipher, err := crypto.NewCipher(cfg.Vault.EncryptionSecret)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar a cifra do cofre de credenciais")
	}

	stateTTL := time.Duration(cfg.Vault.StateTTLMinutes) * time.Minute
	nonces, err := noncestore.New(cfg.Redis.URL, stateTTL)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao registro de nonces")
	}
	defer nonces.Close()

	integrationRepo := repository.NewIntegrationRepository(pgConn, cipher)
	metricRepo := repository.NewDailyMetricRepository(pgConn)

	pacer := ratelimit.NewPacer()

	connectors := integrator.NewRegistry(
		shopee.New(cfg, shopeeclient.NewClient(cfg), pacer),
		shopify.New(cfg, shopifyclient.NewClient(cfg), pacer),
		nuvemshop.New(cfg, nuvemshopclient.NewClient(cfg), pacer),
		tiny.New(cfg, tinyclient.NewClient(cfg), pacer),
	)

	connectService := connecting.NewService(integrationRepo, connectors, nonces, cfg)
	syncService := syncing.NewService(integrationRepo, metricRepo, connectors, cfg)
	reportService := reporting.NewService(metricRepo)

	orderSyncService := scheduler.NewOrderSyncService(syncService, cfg)
	if err := orderSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de pedidos")
	} else {
		logrus.Info("Agendador de sincronização de pedidos iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		connectService,
		syncService,
		reportService,
		orderSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
