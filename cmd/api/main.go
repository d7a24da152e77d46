package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vendor-kpi-api/infrastructure/integrator/dux"
	"github.com/vfg2006/vendor-kpi-api/infrastructure/integrator/dux/duxclient"
	"github.com/vfg2006/vendor-kpi-api/infrastructure/repository"
	"github.com/vfg2006/vendor-kpi-api/internal/api"
	"github.com/vfg2006/vendor-kpi-api/internal/config"
	"github.com/vfg2006/vendor-kpi-api/internal/domain"
	"github.com/vfg2006/vendor-kpi-api/internal/scheduler"
	"github.com/vfg2006/vendor-kpi-api/internal/usecases/kpi"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// config.Campaign e domain.Campaign têm os mesmos campos
	campaign := domain.Campaign(cfg.Campaign)
	seed := repository.NewSeed(campaign)

	kpiService := kpi.NewService(
		repository.NewVendorRepository(seed.Vendors),
		repository.NewBranchRepository(seed.Branches),
		repository.NewInvoiceRepository(seed.Invoices),
		repository.NewGoalRepository(seed.Goals),
	)

	duxIntegrator := dux.New(duxclient.NewClient(cfg))

	kpiSnapshotService := scheduler.NewKPISnapshotService(kpiService, cfg)
	if err := kpiSnapshotService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshot de KPI")
	}

	server, err := api.New(cfg, kpiService, duxIntegrator, kpiSnapshotService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
