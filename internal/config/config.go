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
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Processing Processing `mapstructure:",squash"`
	Cors       Cors       `mapstructure:",squash"`
	SmokeCheck SmokeCheck `mapstructure:",squash"`
}

type App struct {
	Name     string `mapstructure:"app_name"`
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type Processing struct {
	Timeout     time.Duration `mapstructure:"process_timeout"`
	MaxRecords  int           `mapstructure:"process_max_records"`
	DefaultYear int           `mapstructure:"default_year"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// SmokeCheck configura a execução periódica do pipeline com dados fixos
type SmokeCheck struct {
	Enabled      bool   `mapstructure:"smoke_check_enabled"`
	CronSchedule string `mapstructure:"smoke_check_cron"`
}

func SetDefaults() {
	viper.SetDefault("APP_NAME", "Nalk AI Processor")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 5000)
	viper.SetDefault("SHUTDOWN_TIMEOUT", "15s")

	// Defaults do pipeline de perguntas
	viper.SetDefault("PROCESS_TIMEOUT", "10s")      // Limite por requisição
	viper.SetDefault("PROCESS_MAX_RECORDS", 200000) // Limite de registros por requisição
	viper.SetDefault("DEFAULT_YEAR", 2025)          // Ano usado quando a pergunta só cita o mês

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173,http://localhost:8080")

	// Defaults do teste periódico
	viper.SetDefault("SMOKE_CHECK_ENABLED", false)
	viper.SetDefault("SMOKE_CHECK_CRON", "*/30 * * * *") // A cada 30 minutos
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

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
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
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
