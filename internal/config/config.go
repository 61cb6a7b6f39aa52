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

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Ledger          Ledger          `mapstructure:",squash"`
	Characteristics Characteristics `mapstructure:",squash"`
	Analysis        Analysis        `mapstructure:",squash"`
	Report          Report          `mapstructure:",squash"`
	Snapshot        Snapshot        `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Enabled bool   `mapstructure:"server_enabled"`
	Host    string `mapstructure:"host"`
	Port    string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Ledger aponta para a pasta de exports de faturamento por produto.
type Ledger struct {
	Dir        string `mapstructure:"ledger_dir"`
	FilePrefix string `mapstructure:"ledger_prefix"`
}

// Characteristics aponta para a planilha de características de produto
// (cliente, projeto, status). Opcional: ausência degrada para "N/A".
type Characteristics struct {
	File string `mapstructure:"characteristics_file"`
}

// Analysis são os parâmetros do monitor de preços. Os nomes das opções são o
// contrato externo herdado do BI de vendas.
type Analysis struct {
	MinimumVariationPct  float64 `mapstructure:"variacao_minima"`
	ReadjustmentAlertDay int     `mapstructure:"dias_alerta_reajuste"`
	MinimumRevenue       float64 `mapstructure:"faturamento_minimo"`
	AnalysisMonths       int     `mapstructure:"meses_analise"`
}

type Report struct {
	OutputFile     string `mapstructure:"report_output"`
	CSVOutputFile  string `mapstructure:"report_csv_output"`
	RefreshEnabled bool   `mapstructure:"report_refresh_enabled"`
	RefreshCron    string `mapstructure:"report_refresh_cron"`
}

type Snapshot struct {
	Enabled bool `mapstructure:"snapshot_enabled"`
	// Dias de histórico mantidos; 0 desativa a limpeza
	RetentionDays int `mapstructure:"snapshot_retention_days"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("SERVER_ENABLED", false)
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/price_monitor")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("LEDGER_DIR", "data/vendas")
	viper.SetDefault("LEDGER_PREFIX", "Faturamento por Produto_")
	viper.SetDefault("CHARACTERISTICS_FILE", "")

	// Parâmetros padrão da análise de preços
	viper.SetDefault("VARIACAO_MINIMA", 0.5)      // % mínima considerada reajuste
	viper.SetDefault("DIAS_ALERTA_REAJUSTE", 90)  // dias sem reajuste até o alerta
	viper.SetDefault("FATURAMENTO_MINIMO", 1000)  // R$ mínimo considerado relevante
	viper.SetDefault("MESES_ANALISE", 6)          // janela de análise de faturamento

	viper.SetDefault("REPORT_OUTPUT", "dashboard_precos.html")
	viper.SetDefault("REPORT_CSV_OUTPUT", "")
	viper.SetDefault("REPORT_REFRESH_ENABLED", false)
	viper.SetDefault("REPORT_REFRESH_CRON", "0 6 * * *") // Todos os dias às 6h da manhã

	viper.SetDefault("SNAPSHOT_ENABLED", false)
	viper.SetDefault("SNAPSHOT_RETENTION_DAYS", 365)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejeita configurações inválidas antes de qualquer agregação: a
// média mensal divide pelo tamanho configurado da janela, então uma janela
// menor que um mês é erro de configuração, não erro por produto.
func (c *Config) Validate() error {
	if c.Analysis.AnalysisMonths < 1 {
		return fmt.Errorf("meses_analise deve ser no mínimo 1, recebido %d", c.Analysis.AnalysisMonths)
	}

	return nil
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
		filepath.Join(cwd, "../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado; usando defaults e variáveis de ambiente")
}
