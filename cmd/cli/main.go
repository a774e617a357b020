package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/nalk-ai-api/internal/cli"
	"github.com/vfg2006/nalk-ai-api/internal/config"
	"github.com/vfg2006/nalk-ai-api/internal/usecases/processing"
)

func main() {
	// Na linha de comando apenas avisos e erros vão para o stderr
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.WarnLevel)

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Erro:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd := cli.NewRootCmd(cfg, processing.NewService(cfg))
	return cli.Execute(ctx, rootCmd)
}
