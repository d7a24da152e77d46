package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Dux         Dux         `mapstructure:",squash"`
	Campaign    Campaign    `mapstructure:",squash"`
	KPISnapshot KPISnapshot `mapstructure:",squash"`
}

type Server struct {
	Host           string `mapstructure:"host"`
	Port           string `mapstructure:"port"`
	StaticDir      string `mapstructure:"static_dir"`
	MetricsEnabled bool   `mapstructure:"metrics_enabled"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Dux guarda a configuração do ERP Dux. O token vai no header authorization sem prefixo Bearer.
type Dux struct {
	URL              string        `mapstructure:"dux_url"`
	Token            string        `mapstructure:"dux_token"`
	Timeout          time.Duration `mapstructure:"dux_timeout"`
	RateLimitBackoff time.Duration `mapstructure:"dux_rate_limit_backoff"`
}

// Campaign define os literais da campanha de marketing usados na classificação dos itens
type Campaign struct {
	StarBrandPrefix      string   `mapstructure:"campaign_star_brand_prefix"`
	CategoryACode        string   `mapstructure:"campaign_category_a_code"`
	CategoryADescription string   `mapstructure:"campaign_category_a_description"`
	CategoryBBrand       string   `mapstructure:"campaign_category_b_brand"`
	CategoryBMinWeightKg float64  `mapstructure:"campaign_category_b_min_weight_kg"`
	CategoryBCodes       []string `mapstructure:"campaign_category_b_codes"`
}

type KPISnapshot struct {
	CronSchedule string `mapstructure:"kpi_snapshot_cron"`
	Enabled      bool   `mapstructure:"kpi_snapshot_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("STATIC_DIR", "static")
	viper.SetDefault("METRICS_ENABLED", true)

	viper.SetDefault("DUX_URL", "https://erp.duxsoftware.com.ar/WSERP/rest/services")
	viper.SetDefault("DUX_TOKEN", "")
	viper.SetDefault("DUX_TIMEOUT", "30s")
	viper.SetDefault("DUX_RATE_LIMIT_BACKOFF", "10s") // Dux pede ~10s depois de "Has alcanzado el limite"

	viper.SetDefault("CAMPAIGN_STAR_BRAND_PREFIX", "PETS PLUS")
	viper.SetDefault("CAMPAIGN_CATEGORY_A_CODE", "77700001")
	viper.SetDefault("CAMPAIGN_CATEGORY_A_DESCRIPTION", "SENDA AD")
	viper.SetDefault("CAMPAIGN_CATEGORY_B_BRAND", "JASPE")
	viper.SetDefault("CAMPAIGN_CATEGORY_B_MIN_WEIGHT_KG", 3.0)
	viper.SetDefault("CAMPAIGN_CATEGORY_B_CODES", "900906,900905,900908,900910,900919,900911,900907,900909,900920,900912")

	viper.SetDefault("KPI_SNAPSHOT_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("KPI_SNAPSHOT_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	if config.Dux.Token == "" {
		logrus.Warn("DUX_TOKEN não configurado, chamadas ao ERP serão rejeitadas pelo Dux")
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
