// Package scheduler contém os serviços agendados da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vendor-kpi-api/internal/config"
	"github.com/vfg2006/vendor-kpi-api/internal/domain"
	"github.com/vfg2006/vendor-kpi-api/pkg/metrics"
	"github.com/vfg2006/vendor-kpi-api/pkg/utils"
)

// AdminReporter é a parte do serviço de KPI usada pelo snapshot
type AdminReporter interface {
	GetAdminKPI(period string) ([]*domain.VendorKPIReport, error)
}

type KPISnapshotConfig struct {
	CronSchedule string
	Enabled      bool
}

// SnapshotResult resume uma execução do snapshot
type SnapshotResult struct {
	RunID   string `json:"run_id"`
	Period  string `json:"periodo"`
	Vendors int    `json:"vendedores"`
}

type KPISnapshotService struct {
	scheduler *gocron.Scheduler
	reporter  AdminReporter
	config    KPISnapshotConfig
	now       func() time.Time

	runMutex        sync.Mutex
	running         bool
	lastRunID       string
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastError       string
	lastResult      *SnapshotResult
}

func NewKPISnapshotService(reporter AdminReporter, cfg *config.Config) *KPISnapshotService {
	snapshotConfig := KPISnapshotConfig{
		CronSchedule: cfg.KPISnapshot.CronSchedule,
		Enabled:      cfg.KPISnapshot.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": snapshotConfig.CronSchedule,
		"enabled":       snapshotConfig.Enabled,
	}).Info("Configuração do agendador de snapshot de KPI carregada")

	return &KPISnapshotService{
		scheduler: gocron.NewScheduler(time.Local),
		reporter:  reporter,
		config:    snapshotConfig,
		now:       time.Now,
	}
}

func (s *KPISnapshotService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Snapshot de KPI desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshot de KPI")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.Run(); err != nil {
			logrus.WithError(err).Error("Erro no snapshot de KPI")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshot de KPI: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshot de KPI")
		s.scheduler.Stop()
	}()

	return nil
}

// ErrSnapshotRunning indica que já existe uma execução em andamento
var ErrSnapshotRunning = fmt.Errorf("snapshot de KPI já em andamento")

// Run calcula o relatório administrativo do mês corrente e publica o avanço de cada vendedor
func (s *KPISnapshotService) Run() (*SnapshotResult, error) {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Warn("Snapshot de KPI já está em execução")
		return nil, ErrSnapshotRunning
	}
	s.running = true
	s.lastStartedAt = s.now()
	s.runMutex.Unlock()

	result, err := s.run()

	s.runMutex.Lock()
	s.running = false
	s.lastCompletedAt = s.now()
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastRunID = result.RunID
		s.lastResult = result
	}
	s.runMutex.Unlock()

	if err != nil {
		metrics.IncSnapshotRuns("error")
		return nil, err
	}
	metrics.IncSnapshotRuns("ok")
	return result, nil
}

func (s *KPISnapshotService) run() (*SnapshotResult, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id da execução: %w", err)
	}

	period := domain.PeriodOf(s.now()).YearMonth()
	logger := logrus.WithFields(logrus.Fields{
		"run_id": runID,
		"period": period,
	})
	logger.Info("Iniciando snapshot de KPI")

	reports, err := s.reporter.GetAdminKPI(period)
	if err != nil {
		return nil, fmt.Errorf("erro ao calcular KPI do período %s: %w", period, err)
	}

	for _, r := range reports {
		publish(r)

		logger.WithFields(logrus.Fields{
			"vendor_id":     r.VendorID,
			"vendor":        r.VendorName,
			"branch_id":     r.BranchID,
			"total":         r.Total,
			"total_pct":     r.TotalPercent,
			"estrella_pct":  r.StarPercent,
			"senda20_pct":   r.CategoryAPercent,
			"jaspe3kg_pct":  r.CategoryBPercent,
			"invoice_count": len(r.Invoices),
		}).Info("Avanço do vendedor")
	}

	logger.WithField("vendors", len(reports)).Info("Snapshot de KPI concluído")

	return &SnapshotResult{
		RunID:   runID,
		Period:  period,
		Vendors: len(reports),
	}, nil
}

func publish(r *domain.VendorKPIReport) {
	metrics.SetAttainment(r.VendorID, "total", r.TotalPercent)
	metrics.SetAttainment(r.VendorID, "estrella", r.StarPercent)
	metrics.SetAttainment(r.VendorID, "senda20", r.CategoryAPercent)
	metrics.SetAttainment(r.VendorID, "jaspe3kg", r.CategoryBPercent)
}

// TriggerManualRun inicia uma execução em background
func (s *KPISnapshotService) TriggerManualRun() {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Info("Snapshot de KPI já em andamento, ignorando solicitação manual")
		return
	}
	s.runMutex.Unlock()

	logrus.Info("Iniciando snapshot manual de KPI")
	go func() {
		if _, err := s.Run(); err != nil {
			logrus.WithError(err).Error("Erro no snapshot manual de KPI")
		}
	}()
}

// GetStatus retorna o status atual do snapshot
func (s *KPISnapshotService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	return map[string]any{
		"running":           s.running,
		"cron":              s.config.CronSchedule,
		"enabled":           s.config.Enabled,
		"last_run_id":       s.lastRunID,
		"last_started_at":   s.lastStartedAt,
		"last_completed_at": s.lastCompletedAt,
		"last_error":        s.lastError,
		"last_result":       s.lastResult,
	}
}
