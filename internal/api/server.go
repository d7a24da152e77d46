package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vendor-kpi-api/infrastructure/integrator/dux"
	"github.com/vfg2006/vendor-kpi-api/internal/api/handler"
	"github.com/vfg2006/vendor-kpi-api/internal/api/handler/router"
	"github.com/vfg2006/vendor-kpi-api/internal/config"
	"github.com/vfg2006/vendor-kpi-api/internal/usecases/kpi"
	"github.com/vfg2006/vendor-kpi-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	kpiService kpi.KPIService,
	duxIntegrator dux.DuxIntegrator,
	kpiSnapshotService handler.CronJob,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		KPISnapshotService: kpiSnapshotService,
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, kpiService, duxIntegrator, cronServices),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

// NewHandler monta o router com a cadeia de middlewares
func NewHandler(
	config *config.Config,
	kpiService kpi.KPIService,
	duxIntegrator dux.DuxIntegrator,
	cronServices handler.CronJobServices,
) http.Handler {
	configs := []router.ConfigRouter{
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Vendors(kpiService)...),
		router.WithRoutes(handler.KPI(kpiService)...),
		router.WithRoutes(handler.ERP(duxIntegrator)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	}

	if config.Server.MetricsEnabled {
		configs = append(configs, router.WithRoutes(handler.Metrics()...))
	}

	if static := staticFiles(config.Server.StaticDir); static != nil {
		configs = append(configs, router.WithFallback(static))
	}

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	return alice.New(middlewares...).Then(router.New(configs...))
}

// staticFiles serve o front-end em "/" quando o diretório existe
func staticFiles(dir string) http.Handler {
	if dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		logrus.WithField("dir", dir).Warn("Diretório de arquivos estáticos não encontrado, front-end desabilitado")
		return nil
	}

	return http.FileServer(http.Dir(dir))
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithField("timeout", "15s").Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
