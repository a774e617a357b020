package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/nalk-ai-api/internal/api"
	"github.com/vfg2006/nalk-ai-api/internal/config"
	"github.com/vfg2006/nalk-ai-api/internal/scheduler"
	"github.com/vfg2006/nalk-ai-api/internal/usecases/processing"
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

	processor := processing.NewService(cfg)

	logrus.WithFields(logrus.Fields{
		"timeout":      cfg.Processing.Timeout.String(),
		"max_records":  cfg.Processing.MaxRecords,
		"default_year": cfg.Processing.DefaultYear,
	}).Infof("Iniciando %s", cfg.App.Name)

	// Inicia o teste periódico em background
	smokeCheckService := scheduler.NewSmokeCheckService(processor, cfg)
	if err := smokeCheckService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do teste periódico")
	}

	server, err := api.New(cfg, processor)
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
