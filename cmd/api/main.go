package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rlourenco/commission-api/internal/api"
	"github.com/rlourenco/commission-api/internal/config"
	"github.com/rlourenco/commission-api/internal/scheduler"
	"github.com/rlourenco/commission-api/internal/usecases/commissioning"
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

	calculatorService := commissioning.NewService()

	// Inicializa o keep-alive em background
	keepAliveService := scheduler.NewKeepAliveService(cfg)
	if err := keepAliveService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de keep-alive")
	} else {
		logrus.Info("Agendador de keep-alive iniciado com sucesso")
	}

	server, err := api.New(cfg, calculatorService)
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
