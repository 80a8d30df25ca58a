package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Ingest    Ingest    `mapstructure:",squash"`
	InboxSync InboxSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Ingest struct {
	ColumnMapFile   string `mapstructure:"column_map_file"`
	ReportCoercions bool   `mapstructure:"ingest_report_coercions"`
}

type InboxSync struct {
	InboxDir          string `mapstructure:"inbox_dir"`
	OutboxDir         string `mapstructure:"outbox_dir"`
	RejectedDir       string `mapstructure:"rejected_dir"`
	CronSchedule      string `mapstructure:"inbox_sync_cron"`
	Enabled           bool   `mapstructure:"inbox_sync_enabled"`
	MaxConcurrentJobs int    `mapstructure:"inbox_sync_max_concurrent_jobs"`
	MaxFileSizeMB     int    `mapstructure:"inbox_max_file_size_mb"`
}

func SetDefaults() {
	viper.SetDefault("COLUMN_MAP_FILE", "")            // Layout padrão quando vazio
	viper.SetDefault("INGEST_REPORT_COERCIONS", false) // Diagnósticos de valores zerados

	// Defaults para importação da pasta de entrada
	viper.SetDefault("INBOX_DIR", "./data/inbox")
	viper.SetDefault("OUTBOX_DIR", "./data/outbox")
	viper.SetDefault("REJECTED_DIR", "./data/rejected")
	viper.SetDefault("INBOX_SYNC_CRON", "*/5 * * * *")    // A cada 5 minutos
	viper.SetDefault("INBOX_SYNC_ENABLED", true)          // Habilitar importação
	viper.SetDefault("INBOX_SYNC_MAX_CONCURRENT_JOBS", 3) // 3 períodos em paralelo
	viper.SetDefault("INBOX_MAX_FILE_SIZE_MB", 20)        // Arquivos maiores são rejeitados

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Debug("Arquivo .env lido pelo Viper com sucesso")
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

	if config.InboxSync.MaxConcurrentJobs < 1 {
		config.InboxSync.MaxConcurrentJobs = 1
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Debug("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
