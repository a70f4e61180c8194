package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config é a configuração imutável do processo, construída uma única vez
// na inicialização e passada por referência a cada conector.
type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Redis     Redis     `mapstructure:",squash"`
	Auth      Auth      `mapstructure:",squash"`
	Vault     Vault     `mapstructure:",squash"`
	Sync      Sync      `mapstructure:",squash"`
	SyncAll   SyncAll   `mapstructure:",squash"`
	Shopee    Shopee    `mapstructure:",squash"`
	Shopify   Shopify   `mapstructure:",squash"`
	Nuvemshop Nuvemshop `mapstructure:",squash"`
	Tiny      Tiny      `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	// BaseURL é a URL pública da API, usada para montar as redirect URIs
	BaseURL string `mapstructure:"app_base_url"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Redis struct {
	URL string `mapstructure:"redis_url"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Vault configura a proteção do blob de credenciais em repouso
type Vault struct {
	EncryptionSecret string `mapstructure:"vault_encryption_secret"`
	// StateTTLMinutes é a validade do state token do OAuth e do registro
	// de nonces já consumidos
	StateTTLMinutes int `mapstructure:"vault_state_ttl_minutes"`
}

// Sync configura o comportamento comum das sincronizações
type Sync struct {
	LookbackDays       int `mapstructure:"sync_lookback_days"`
	MaxPages           int `mapstructure:"sync_max_pages"`
	MaxRetries         int `mapstructure:"sync_max_retries"`
	RetryBaseMs        int `mapstructure:"sync_retry_base_ms"`
	HTTPTimeoutSeconds int `mapstructure:"sync_http_timeout_seconds"`
}

// SyncAll configura o agendador opcional que ressincroniza todas as
// integrações conectadas
type SyncAll struct {
	CronSchedule string `mapstructure:"sync_all_cron"`
	Enabled      bool   `mapstructure:"sync_all_cron_enabled"`
}

type Shopee struct {
	BaseURL     string `mapstructure:"shopee_base_url"`
	PartnerID   int64  `mapstructure:"shopee_partner_id"`
	PartnerKey  string `mapstructure:"shopee_partner_key"`
	PageSize    int    `mapstructure:"shopee_page_size"`
	PageDelayMs int    `mapstructure:"shopee_page_delay_ms"`
}

type Shopify struct {
	APIVersion  string `mapstructure:"shopify_api_version"`
	Scopes      string `mapstructure:"shopify_scopes"`
	PageSize    int    `mapstructure:"shopify_page_size"`
	PageDelayMs int    `mapstructure:"shopify_page_delay_ms"`
}

type Nuvemshop struct {
	AppID        string `mapstructure:"nuvemshop_app_id"`
	ClientSecret string `mapstructure:"nuvemshop_client_secret"`
	AuthBaseURL  string `mapstructure:"nuvemshop_auth_base_url"`
	APIBaseURL   string `mapstructure:"nuvemshop_api_base_url"`
	PageSize     int    `mapstructure:"nuvemshop_page_size"`
	PageDelayMs  int    `mapstructure:"nuvemshop_page_delay_ms"`
}

type Tiny struct {
	BaseURL     string `mapstructure:"tiny_base_url"`
	PageDelayMs int    `mapstructure:"tiny_page_delay_ms"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("APP_BASE_URL", "http://localhost:8000")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/commerce_sync")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("VAULT_ENCRYPTION_SECRET", "your_vault_secret")
	viper.SetDefault("VAULT_STATE_TTL_MINUTES", 10)

	// Janela fixa de 90 dias revarrida em toda sincronização
	viper.SetDefault("SYNC_LOOKBACK_DAYS", 90)
	viper.SetDefault("SYNC_MAX_PAGES", 500)
	viper.SetDefault("SYNC_MAX_RETRIES", 3)
	viper.SetDefault("SYNC_RETRY_BASE_MS", 500)
	viper.SetDefault("SYNC_HTTP_TIMEOUT_SECONDS", 30)

	viper.SetDefault("SYNC_ALL_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("SYNC_ALL_CRON_ENABLED", false)

	viper.SetDefault("SHOPEE_BASE_URL", "https://partner.shopeemobile.com")
	viper.SetDefault("SHOPEE_PARTNER_ID", 0)
	viper.SetDefault("SHOPEE_PARTNER_KEY", "")
	viper.SetDefault("SHOPEE_PAGE_SIZE", 100)
	viper.SetDefault("SHOPEE_PAGE_DELAY_MS", 1100) // ~60 req/min

	viper.SetDefault("SHOPIFY_API_VERSION", "2024-01")
	viper.SetDefault("SHOPIFY_SCOPES", "read_orders")
	viper.SetDefault("SHOPIFY_PAGE_SIZE", 250)
	viper.SetDefault("SHOPIFY_PAGE_DELAY_MS", 600) // 2 req/s

	viper.SetDefault("NUVEMSHOP_APP_ID", "")
	viper.SetDefault("NUVEMSHOP_CLIENT_SECRET", "")
	viper.SetDefault("NUVEMSHOP_AUTH_BASE_URL", "https://www.nuvemshop.com.br")
	viper.SetDefault("NUVEMSHOP_API_BASE_URL", "https://api.nuvemshop.com.br/v1")
	viper.SetDefault("NUVEMSHOP_PAGE_SIZE", 200)
	viper.SetDefault("NUVEMSHOP_PAGE_DELAY_MS", 1100)

	viper.SetDefault("TINY_BASE_URL", "https://api.tiny.com.br/api2")
	viper.SetDefault("TINY_PAGE_DELAY_MS", 1100) // 60 req/min
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile carrega o arquivo .env pelas localizações conhecidas
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
